package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/octofit/api-go/controllers"
)

func SetupLeaderboardRoutes(public *gin.RouterGroup, leaderboardController *controllers.LeaderboardController) {
	public.GET("/leaderboards", leaderboardController.ListLeaderboards)
	public.GET("/leaderboard-entries", leaderboardController.ListEntries)
}
