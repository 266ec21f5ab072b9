package store

import (
	"github.com/octofit/api-go/models"
	"gorm.io/gorm"
)

type ActivityTypeStore interface {
	ByID(id uint) (*models.ActivityType, error)
	All() ([]models.ActivityType, error)
}

type activityTypeStore struct {
	db *gorm.DB
}

func NewActivityTypeStore(db *gorm.DB) ActivityTypeStore {
	return &activityTypeStore{db: db}
}

func (s *activityTypeStore) ByID(id uint) (*models.ActivityType, error) {
	var activityType models.ActivityType
	if err := s.db.First(&activityType, id).Error; err != nil {
		return nil, translate(err)
	}
	return &activityType, nil
}

func (s *activityTypeStore) All() ([]models.ActivityType, error) {
	var types []models.ActivityType
	if err := s.db.Order("name").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
