package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/octofit/api-go/controllers"
)

func SetupActivityTypeRoutes(public *gin.RouterGroup, activityTypeController *controllers.ActivityTypeController) {
	types := public.Group("/activity-types")
	{
		types.GET("", activityTypeController.ListActivityTypes)
		types.GET("/:id", activityTypeController.GetActivityType)
	}
}
