package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/octofit/api-go/controllers"
	"github.com/octofit/api-go/leaderboard"
	"github.com/octofit/api-go/middleware"
	"github.com/octofit/api-go/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, materializer *leaderboard.Materializer) {
	users := store.NewUserStore(db)
	profiles := store.NewProfileStore(db)
	teams := store.NewTeamStore(db)
	activityTypes := store.NewActivityTypeStore(db)
	activities := store.NewActivityStore(db)
	leaderboards := store.NewLeaderboardStore(db)
	suggestions := store.NewSuggestionStore(db)

	// Initialize controllers
	authController := controllers.NewAuthController(users)
	userController := controllers.NewUserController(users)
	profileController := controllers.NewProfileController(profiles)
	activityTypeController := controllers.NewActivityTypeController(activityTypes)
	activityController := controllers.NewActivityController(activities)
	teamController := controllers.NewTeamController(teams, users, materializer)
	leaderboardController := controllers.NewLeaderboardController(leaderboards)
	suggestionController := controllers.NewSuggestionController(suggestions)

	r.Use(middleware.RequestID())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes: registration, login, and open reads
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)

		public.GET("/users", userController.ListUsers)
		public.GET("/users/:id", userController.GetUser)

		SetupActivityTypeRoutes(public, activityTypeController)
		SetupLeaderboardRoutes(public, leaderboardController)

		public.GET("/teams", teamController.ListTeams)
		public.GET("/teams/:id", teamController.GetTeam)
	}

	// Protected routes: owned entities and team mutations
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupProfileRoutes(protected, profileController)
		SetupActivityRoutes(protected, activityController)
		SetupTeamRoutes(protected, teamController)
		SetupSuggestionRoutes(protected, suggestionController)
	}
}
