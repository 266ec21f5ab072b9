package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // Don't expose password in JSON
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`

	Profile     *Profile            `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Activities  []Activity          `json:"-" gorm:"foreignKey:UserID"`
	Suggestions []WorkoutSuggestion `json:"-" gorm:"foreignKey:UserID"`
	Teams       []Team              `json:"-" gorm:"many2many:team_members;"`
}
