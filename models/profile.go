package models

import (
	"time"

	"github.com/lib/pq"
)

type Profile struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	User         User           `json:"-" gorm:"foreignKey:UserID"`
	Bio          string         `json:"bio" gorm:"type:text"`
	ProfileImage string         `json:"profile_image"`
	FitnessGoals pq.StringArray `json:"fitness_goals" gorm:"type:text[]"` // ["lose_weight", "build_endurance", ...]
	CreatedAt    time.Time      `json:"created_at"`
}
