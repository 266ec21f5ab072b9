package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/octofit/api-go/store"
)

type LeaderboardController struct {
	Leaderboards store.LeaderboardStore
}

func NewLeaderboardController(leaderboards store.LeaderboardStore) *LeaderboardController {
	return &LeaderboardController{Leaderboards: leaderboards}
}

// ListLeaderboards lists leaderboards, optionally filtered by team_id.
func (lc *LeaderboardController) ListLeaderboards(c *gin.Context) {
	if teamParam := c.Query("team_id"); teamParam != "" {
		teamID, err := strconv.ParseUint(teamParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team_id"})
			return
		}
		boards, err := lc.Leaderboards.ByTeam(uint(teamID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list leaderboards"})
			return
		}
		c.JSON(http.StatusOK, boards)
		return
	}

	boards, err := lc.Leaderboards.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list leaderboards"})
		return
	}
	c.JSON(http.StatusOK, boards)
}

// ListEntries lists leaderboard entries ordered by rank ascending,
// optionally filtered by leaderboard_id.
func (lc *LeaderboardController) ListEntries(c *gin.Context) {
	if boardParam := c.Query("leaderboard_id"); boardParam != "" {
		boardID, err := strconv.ParseUint(boardParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leaderboard_id"})
			return
		}
		entries, err := lc.Leaderboards.Entries(uint(boardID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
			return
		}
		c.JSON(http.StatusOK, entries)
		return
	}

	entries, err := lc.Leaderboards.AllEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
