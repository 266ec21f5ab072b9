package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/octofit/api-go/models"
	"github.com/octofit/api-go/store"
	"github.com/octofit/api-go/utils"
)

type SuggestionController struct {
	Suggestions store.SuggestionStore
}

func NewSuggestionController(suggestions store.SuggestionStore) *SuggestionController {
	return &SuggestionController{Suggestions: suggestions}
}

type CreateSuggestionRequest struct {
	ActivityTypeID  uint   `json:"activity_type_id" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	Difficulty      string `json:"difficulty" binding:"required,oneof=easy moderate hard"`
	Description     string `json:"description"`
}

func (sc *SuggestionController) ListSuggestions(c *gin.Context) {
	user := utils.GetUser(c)

	suggestions, err := sc.Suggestions.ByUser(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list suggestions"})
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

func (sc *SuggestionController) CreateSuggestion(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestion := models.WorkoutSuggestion{
		UserID:          user.UserID,
		ActivityTypeID:  req.ActivityTypeID,
		DurationMinutes: req.DurationMinutes,
		Difficulty:      req.Difficulty,
		Description:     req.Description,
	}

	if err := sc.Suggestions.Create(&suggestion); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create suggestion"})
		return
	}
	c.JSON(http.StatusCreated, suggestion)
}

// Accept marks one of the caller's suggestions as accepted.
func (sc *SuggestionController) AcceptSuggestion(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid suggestion id"})
		return
	}

	suggestion, err := sc.Suggestions.ByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion not found"})
		return
	}

	if suggestion.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only accept your own suggestions"})
		return
	}

	suggestion.Accepted = true
	if err := sc.Suggestions.Save(suggestion); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept suggestion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "suggestion accepted"})
}
