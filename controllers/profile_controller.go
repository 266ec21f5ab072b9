package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/octofit/api-go/models"
	"github.com/octofit/api-go/store"
	"github.com/octofit/api-go/utils"
)

type ProfileController struct {
	Profiles store.ProfileStore
}

func NewProfileController(profiles store.ProfileStore) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

type CreateProfileRequest struct {
	Bio          string   `json:"bio"`
	ProfileImage string   `json:"profile_image"`
	FitnessGoals []string `json:"fitness_goals"`
}

func (pc *ProfileController) ListProfiles(c *gin.Context) {
	profiles, err := pc.Profiles.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list profiles"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (pc *ProfileController) CreateProfile(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := models.Profile{
		UserID:       user.UserID,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		FitnessGoals: pq.StringArray(req.FitnessGoals),
	}

	if err := pc.Profiles.Create(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile already exists"})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Me returns the authenticated caller's profile.
func (pc *ProfileController) Me(c *gin.Context) {
	user := utils.GetUser(c)

	profile, err := pc.Profiles.ByUser(user.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
