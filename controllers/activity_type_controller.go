package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/octofit/api-go/store"
)

type ActivityTypeController struct {
	Types store.ActivityTypeStore
}

func NewActivityTypeController(types store.ActivityTypeStore) *ActivityTypeController {
	return &ActivityTypeController{Types: types}
}

func (tc *ActivityTypeController) ListActivityTypes(c *gin.Context) {
	types, err := tc.Types.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activity types"})
		return
	}
	c.JSON(http.StatusOK, types)
}

func (tc *ActivityTypeController) GetActivityType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity type id"})
		return
	}

	activityType, err := tc.Types.ByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity type not found"})
		return
	}
	c.JSON(http.StatusOK, activityType)
}
