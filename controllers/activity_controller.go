package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/octofit/api-go/models"
	"github.com/octofit/api-go/store"
	"github.com/octofit/api-go/utils"
)

type ActivityController struct {
	Activities store.ActivityStore
}

func NewActivityController(activities store.ActivityStore) *ActivityController {
	return &ActivityController{Activities: activities}
}

type CreateActivityRequest struct {
	ActivityTypeID  uint      `json:"activity_type_id" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=1"`
	DistanceKm      *float64  `json:"distance_km"`
	CaloriesBurned  *int      `json:"calories_burned"`
	Notes           string    `json:"notes"`
	ActivityDate    time.Time `json:"activity_date" binding:"required"`
}

type UpdateActivityRequest struct {
	ActivityTypeID  uint       `json:"activity_type_id"`
	DurationMinutes int        `json:"duration_minutes"`
	DistanceKm      *float64   `json:"distance_km"`
	CaloriesBurned  *int       `json:"calories_burned"`
	Notes           *string    `json:"notes"`
	ActivityDate    *time.Time `json:"activity_date"`
}

// ListActivities returns the caller's activities, newest first. Another
// user's rows are never visible here.
func (ac *ActivityController) ListActivities(c *gin.Context) {
	user := utils.GetUser(c)

	activities, err := ac.Activities.ByUser(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (ac *ActivityController) CreateActivity(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Ownership is fixed to the caller at creation time.
	activity := models.Activity{
		UserID:          user.UserID,
		ActivityTypeID:  req.ActivityTypeID,
		DurationMinutes: req.DurationMinutes,
		DistanceKm:      req.DistanceKm,
		CaloriesBurned:  req.CaloriesBurned,
		Notes:           req.Notes,
		ActivityDate:    req.ActivityDate,
	}

	if err := ac.Activities.Create(&activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := ac.Activities.ByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	if activity.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own activities"})
		return
	}

	if req.ActivityTypeID != 0 {
		activity.ActivityTypeID = req.ActivityTypeID
	}
	if req.DurationMinutes != 0 {
		activity.DurationMinutes = req.DurationMinutes
	}
	if req.DistanceKm != nil {
		activity.DistanceKm = req.DistanceKm
	}
	if req.CaloriesBurned != nil {
		activity.CaloriesBurned = req.CaloriesBurned
	}
	if req.Notes != nil {
		activity.Notes = *req.Notes
	}
	if req.ActivityDate != nil {
		activity.ActivityDate = *req.ActivityDate
	}

	if err := ac.Activities.Save(activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return
	}

	activity, err := ac.Activities.ByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	if activity.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own activities"})
		return
	}

	if err := ac.Activities.Delete(activity.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "activity deleted"})
}
