package store

import (
	"github.com/octofit/api-go/models"
	"gorm.io/gorm"
)

type ProfileStore interface {
	Create(profile *models.Profile) error
	ByUser(userID uint) (*models.Profile, error)
	All() ([]models.Profile, error)
}

type profileStore struct {
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) ProfileStore {
	return &profileStore{db: db}
}

func (s *profileStore) Create(profile *models.Profile) error {
	return s.db.Create(profile).Error
}

func (s *profileStore) ByUser(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (s *profileStore) All() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.Order("id").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
