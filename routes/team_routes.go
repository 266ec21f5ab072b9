package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/octofit/api-go/controllers"
)

func SetupTeamRoutes(protected *gin.RouterGroup, teamController *controllers.TeamController) {
	teams := protected.Group("/teams")
	{
		teams.POST("", teamController.CreateTeam)
		teams.POST("/:id/add_member", teamController.AddMember)
		teams.POST("/:id/remove_member", teamController.RemoveMember)
		teams.POST("/:id/recompute", teamController.Recompute)
	}
}
