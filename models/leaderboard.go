package models

import (
	"time"
)

// Leaderboard timeframes.
const (
	TimeframeDaily   = "daily"
	TimeframeWeekly  = "weekly"
	TimeframeMonthly = "monthly"
	TimeframeAllTime = "all_time"
)

// Leaderboard is derived state: one per (team, timeframe), refreshed by
// the materialization pipeline rather than written by users.
type Leaderboard struct {
	ID        uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID    uint               `gorm:"not null;uniqueIndex:idx_team_timeframe" json:"team_id"`
	Team      Team               `json:"-" gorm:"foreignKey:TeamID"`
	Timeframe string             `gorm:"not null;type:varchar(20);uniqueIndex:idx_team_timeframe" json:"timeframe"`
	Entries   []LeaderboardEntry `json:"entries,omitempty" gorm:"foreignKey:LeaderboardID"`
	CreatedAt time.Time          `json:"created_at"`
}

type LeaderboardEntry struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	LeaderboardID   uint        `gorm:"not null;uniqueIndex:idx_board_user" json:"leaderboard_id"`
	Leaderboard     Leaderboard `json:"-" gorm:"foreignKey:LeaderboardID"`
	UserID          uint        `gorm:"not null;uniqueIndex:idx_board_user" json:"user_id"`
	User            User        `json:"user" gorm:"foreignKey:UserID"`
	TotalCalories   int         `gorm:"not null;default:0" json:"total_calories"`
	TotalDistance   float64     `gorm:"not null;default:0" json:"total_distance"`
	TotalActivities int         `gorm:"not null;default:0" json:"total_activities"`
	Rank            int         `gorm:"not null" json:"rank"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
