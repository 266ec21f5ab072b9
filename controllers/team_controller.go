package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/octofit/api-go/leaderboard"
	"github.com/octofit/api-go/models"
	"github.com/octofit/api-go/store"
	"github.com/octofit/api-go/utils"
)

type TeamController struct {
	Teams        store.TeamStore
	Users        store.UserStore
	Materializer *leaderboard.Materializer
}

func NewTeamController(teams store.TeamStore, users store.UserStore, materializer *leaderboard.Materializer) *TeamController {
	return &TeamController{Teams: teams, Users: users, Materializer: materializer}
}

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type MemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

func (tc *TeamController) ListTeams(c *gin.Context) {
	teams, err := tc.Teams.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list teams"})
		return
	}
	c.JSON(http.StatusOK, teams)
}

func (tc *TeamController) GetTeam(c *gin.Context) {
	team, ok := tc.teamFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, team)
}

func (tc *TeamController) CreateTeam(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator, err := tc.Users.ByID(user.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	team := models.Team{
		Name:        req.Name,
		Description: req.Description,
		CreatedByID: creator.ID,
		Members:     []models.User{*creator},
	}

	if err := tc.Teams.Create(&team); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}
	c.JSON(http.StatusCreated, team)
}

func (tc *TeamController) AddMember(c *gin.Context) {
	team, ok := tc.teamFromParam(c)
	if !ok {
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := tc.Users.ByID(req.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := tc.Teams.AddMember(team, member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "member added"})
}

func (tc *TeamController) RemoveMember(c *gin.Context) {
	team, ok := tc.teamFromParam(c)
	if !ok {
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := tc.Users.ByID(req.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := tc.Teams.RemoveMember(team, member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "member removed"})
}

// Recompute refreshes every timeframe leaderboard for the team. This is
// the explicit trigger for the materialization pipeline; activity
// writes do not refresh leaderboards on their own.
func (tc *TeamController) Recompute(c *gin.Context) {
	team, ok := tc.teamFromParam(c)
	if !ok {
		return
	}

	if err := tc.Materializer.RefreshAll(team.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute leaderboards"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "leaderboards recomputed"})
}

func (tc *TeamController) teamFromParam(c *gin.Context) (*models.Team, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return nil, false
	}

	team, err := tc.Teams.ByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return nil, false
	}
	return team, true
}
