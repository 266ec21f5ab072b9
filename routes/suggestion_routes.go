package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/octofit/api-go/controllers"
)

func SetupSuggestionRoutes(protected *gin.RouterGroup, suggestionController *controllers.SuggestionController) {
	suggestions := protected.Group("/suggestions")
	{
		suggestions.GET("", suggestionController.ListSuggestions)
		suggestions.POST("", suggestionController.CreateSuggestion)
		suggestions.POST("/:id/accept", suggestionController.AcceptSuggestion)
	}
}
