package store

import (
	"github.com/octofit/api-go/models"
	"gorm.io/gorm"
)

type TeamStore interface {
	Create(team *models.Team) error
	ByID(id uint) (*models.Team, error)
	All() ([]models.Team, error)
	Members(teamID uint) ([]models.User, error)
	AddMember(team *models.Team, user *models.User) error
	RemoveMember(team *models.Team, user *models.User) error
}

type teamStore struct {
	db *gorm.DB
}

func NewTeamStore(db *gorm.DB) TeamStore {
	return &teamStore{db: db}
}

func (s *teamStore) Create(team *models.Team) error {
	return s.db.Create(team).Error
}

func (s *teamStore) ByID(id uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.Preload("Members").Preload("CreatedBy").First(&team, id).Error; err != nil {
		return nil, translate(err)
	}
	return &team, nil
}

func (s *teamStore) All() ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Preload("Members").Preload("CreatedBy").Order("id").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *teamStore) Members(teamID uint) ([]models.User, error) {
	var members []models.User
	err := s.db.Model(&models.User{}).
		Joins("JOIN team_members ON team_members.user_id = users.id").
		Where("team_members.team_id = ?", teamID).
		Order("users.id").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (s *teamStore) AddMember(team *models.Team, user *models.User) error {
	return s.db.Model(team).Association("Members").Append(user)
}

func (s *teamStore) RemoveMember(team *models.Team, user *models.User) error {
	return s.db.Model(team).Association("Members").Delete(user)
}
