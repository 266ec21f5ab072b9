package models

import (
	"time"
)

// Activity is one exercise session. Ownership is set at creation and
// never reassigned.
type Activity struct {
	ID              uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint         `gorm:"not null;index" json:"user_id"`
	User            User         `json:"-" gorm:"foreignKey:UserID"`
	ActivityTypeID  uint         `gorm:"not null" json:"activity_type_id"`
	ActivityType    ActivityType `json:"activity_type" gorm:"foreignKey:ActivityTypeID"`
	DurationMinutes int          `gorm:"not null" json:"duration_minutes"`
	DistanceKm      *float64     `json:"distance_km"`
	CaloriesBurned  *int         `json:"calories_burned"`
	Notes           string       `json:"notes" gorm:"type:text"`
	ActivityDate    time.Time    `gorm:"not null;index" json:"activity_date"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
