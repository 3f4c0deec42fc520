package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/octofit/tracker-api/models"
	"gorm.io/gorm"
)

const topPerformersLimit = 10

type LeaderboardController struct {
	DB *gorm.DB
}

func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{DB: db}
}

func (lc *LeaderboardController) preloaded() *gorm.DB {
	return lc.DB.Preload("User").Preload("Team.Owner").Preload("Team.Members")
}

func serializeLeaderboard(entries []models.Leaderboard) []LeaderboardResponse {
	responses := make([]LeaderboardResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, NewLeaderboardResponse(entry))
	}
	return responses
}

// GetLeaderboard lists standings sorted by ascending rank, optionally
// restricted to one team via ?team_id=. Readable without authentication.
func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	query := lc.preloaded()

	if teamParam := c.Query("team_id"); teamParam != "" {
		teamID, err := uuid.Parse(teamParam)
		if err != nil {
			c.JSON(http.StatusOK, []LeaderboardResponse{})
			return
		}
		var team models.Team
		if err := lc.DB.Where("public_id = ?", teamID).First(&team).Error; err != nil {
			// Unknown team filters down to an empty listing.
			c.JSON(http.StatusOK, []LeaderboardResponse{})
			return
		}
		query = query.Where("team_id = ?", team.ID)
	}

	var entries []models.Leaderboard
	if err := query.Order("rank").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching leaderboard: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, serializeLeaderboard(entries))
}

// TopPerformers returns the first 10 standings by rank, ignoring any filter.
func (lc *LeaderboardController) TopPerformers(c *gin.Context) {
	var entries []models.Leaderboard
	if err := lc.preloaded().Order("rank").Limit(topPerformersLimit).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching leaderboard: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, serializeLeaderboard(entries))
}
