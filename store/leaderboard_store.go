package store

import (
	"errors"

	"github.com/octofit/api-go/models"
	"gorm.io/gorm"
)

type LeaderboardStore interface {
	// GetOrCreate returns the leaderboard for (team, timeframe),
	// creating it if absent. (team_id, timeframe) is unique.
	GetOrCreate(teamID uint, timeframe string) (*models.Leaderboard, error)
	ByTeam(teamID uint) ([]models.Leaderboard, error)
	All() ([]models.Leaderboard, error)
	// UpsertEntry writes totals and rank for (leaderboard, user),
	// updating in place when the pair already exists.
	UpsertEntry(entry *models.LeaderboardEntry) error
	// PruneEntries deletes a leaderboard's entries for users outside
	// keepUserIDs.
	PruneEntries(leaderboardID uint, keepUserIDs []uint) error
	// Entries returns a leaderboard's entries ordered by rank ascending.
	Entries(leaderboardID uint) ([]models.LeaderboardEntry, error)
	AllEntries() ([]models.LeaderboardEntry, error)
}

type leaderboardStore struct {
	db *gorm.DB
}

func NewLeaderboardStore(db *gorm.DB) LeaderboardStore {
	return &leaderboardStore{db: db}
}

func (s *leaderboardStore) GetOrCreate(teamID uint, timeframe string) (*models.Leaderboard, error) {
	board := models.Leaderboard{TeamID: teamID, Timeframe: timeframe}
	err := s.db.Where("team_id = ? AND timeframe = ?", teamID, timeframe).FirstOrCreate(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (s *leaderboardStore) ByTeam(teamID uint) ([]models.Leaderboard, error) {
	var boards []models.Leaderboard
	if err := s.db.Where("team_id = ?", teamID).Order("id").Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

func (s *leaderboardStore) All() ([]models.Leaderboard, error) {
	var boards []models.Leaderboard
	if err := s.db.Order("id").Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

func (s *leaderboardStore) UpsertEntry(entry *models.LeaderboardEntry) error {
	var existing models.LeaderboardEntry
	err := s.db.Where("leaderboard_id = ? AND user_id = ?", entry.LeaderboardID, entry.UserID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(entry).Error
	}
	if err != nil {
		return err
	}
	existing.TotalCalories = entry.TotalCalories
	existing.TotalDistance = entry.TotalDistance
	existing.TotalActivities = entry.TotalActivities
	existing.Rank = entry.Rank
	if err := s.db.Save(&existing).Error; err != nil {
		return err
	}
	entry.ID = existing.ID
	return nil
}

func (s *leaderboardStore) PruneEntries(leaderboardID uint, keepUserIDs []uint) error {
	query := s.db.Where("leaderboard_id = ?", leaderboardID)
	if len(keepUserIDs) > 0 {
		query = query.Where("user_id NOT IN ?", keepUserIDs)
	}
	return query.Delete(&models.LeaderboardEntry{}).Error
}

func (s *leaderboardStore) Entries(leaderboardID uint) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	err := s.db.Preload("User").Where("leaderboard_id = ?", leaderboardID).
		Order("rank").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *leaderboardStore) AllEntries() ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := s.db.Preload("User").Order("leaderboard_id, rank").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
