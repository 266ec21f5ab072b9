package models

import (
	"time"
)

type Team struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedByID uint      `gorm:"not null" json:"created_by_id"`
	CreatedBy   User      `json:"created_by" gorm:"foreignKey:CreatedByID"`
	Members     []User    `json:"members" gorm:"many2many:team_members;"`
	CreatedAt   time.Time `json:"created_at"`
}
