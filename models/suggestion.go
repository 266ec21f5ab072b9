package models

import (
	"time"
)

// Workout suggestion difficulties.
const (
	DifficultyEasy     = "easy"
	DifficultyModerate = "moderate"
	DifficultyHard     = "hard"
)

type WorkoutSuggestion struct {
	ID              uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint         `gorm:"not null;index" json:"user_id"`
	User            User         `json:"-" gorm:"foreignKey:UserID"`
	ActivityTypeID  uint         `gorm:"not null" json:"activity_type_id"`
	ActivityType    ActivityType `json:"activity_type" gorm:"foreignKey:ActivityTypeID"`
	DurationMinutes int          `gorm:"not null" json:"duration_minutes"`
	Difficulty      string       `gorm:"not null;type:varchar(20)" json:"difficulty"` // easy, moderate, hard
	Description     string       `gorm:"type:text" json:"description"`
	Accepted        bool         `gorm:"default:false" json:"accepted"`
	SuggestedAt     time.Time    `gorm:"autoCreateTime" json:"suggested_at"`
}
