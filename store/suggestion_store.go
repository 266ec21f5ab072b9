package store

import (
	"github.com/octofit/api-go/models"
	"gorm.io/gorm"
)

type SuggestionStore interface {
	Create(suggestion *models.WorkoutSuggestion) error
	ByID(id uint) (*models.WorkoutSuggestion, error)
	ByUser(userID uint) ([]models.WorkoutSuggestion, error)
	Save(suggestion *models.WorkoutSuggestion) error
}

type suggestionStore struct {
	db *gorm.DB
}

func NewSuggestionStore(db *gorm.DB) SuggestionStore {
	return &suggestionStore{db: db}
}

func (s *suggestionStore) Create(suggestion *models.WorkoutSuggestion) error {
	return s.db.Create(suggestion).Error
}

func (s *suggestionStore) ByID(id uint) (*models.WorkoutSuggestion, error) {
	var suggestion models.WorkoutSuggestion
	if err := s.db.Preload("ActivityType").First(&suggestion, id).Error; err != nil {
		return nil, translate(err)
	}
	return &suggestion, nil
}

func (s *suggestionStore) ByUser(userID uint) ([]models.WorkoutSuggestion, error) {
	var suggestions []models.WorkoutSuggestion
	err := s.db.Preload("ActivityType").Where("user_id = ?", userID).
		Order("suggested_at DESC").Find(&suggestions).Error
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (s *suggestionStore) Save(suggestion *models.WorkoutSuggestion) error {
	return s.db.Save(suggestion).Error
}
