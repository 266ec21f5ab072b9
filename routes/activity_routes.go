package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/octofit/api-go/controllers"
)

func SetupActivityRoutes(protected *gin.RouterGroup, activityController *controllers.ActivityController) {
	activities := protected.Group("/activities")
	{
		activities.GET("", activityController.ListActivities)
		activities.GET("/my_activities", activityController.ListActivities)
		activities.POST("", activityController.CreateActivity)
		activities.PUT("/:id", activityController.UpdateActivity)
		activities.DELETE("/:id", activityController.DeleteActivity)
	}
}
