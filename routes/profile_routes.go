package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/octofit/api-go/controllers"
)

func SetupProfileRoutes(protected *gin.RouterGroup, profileController *controllers.ProfileController) {
	profiles := protected.Group("/profiles")
	{
		profiles.GET("", profileController.ListProfiles)
		profiles.POST("", profileController.CreateProfile)
		profiles.GET("/me", profileController.Me)
	}
}
