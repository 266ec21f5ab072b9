package store

import (
	"time"

	"github.com/octofit/api-go/models"
	"gorm.io/gorm"
)

type ActivityStore interface {
	Create(activity *models.Activity) error
	ByID(id uint) (*models.Activity, error)
	// ByUser returns all of one user's activities, newest first.
	ByUser(userID uint) ([]models.Activity, error)
	// ByUserSince returns one user's activities with activity_date on or
	// after since. A zero since applies no lower bound.
	ByUserSince(userID uint, since time.Time) ([]models.Activity, error)
	Save(activity *models.Activity) error
	Delete(id uint) error
}

type activityStore struct {
	db *gorm.DB
}

func NewActivityStore(db *gorm.DB) ActivityStore {
	return &activityStore{db: db}
}

func (s *activityStore) Create(activity *models.Activity) error {
	return s.db.Create(activity).Error
}

func (s *activityStore) ByID(id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := s.db.Preload("ActivityType").First(&activity, id).Error; err != nil {
		return nil, translate(err)
	}
	return &activity, nil
}

func (s *activityStore) ByUser(userID uint) ([]models.Activity, error) {
	return s.ByUserSince(userID, time.Time{})
}

func (s *activityStore) ByUserSince(userID uint, since time.Time) ([]models.Activity, error) {
	query := s.db.Preload("ActivityType").Where("user_id = ?", userID)
	if !since.IsZero() {
		query = query.Where("activity_date >= ?", since)
	}
	var activities []models.Activity
	if err := query.Order("activity_date DESC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *activityStore) Save(activity *models.Activity) error {
	return s.db.Save(activity).Error
}

func (s *activityStore) Delete(id uint) error {
	return s.db.Delete(&models.Activity{}, id).Error
}
