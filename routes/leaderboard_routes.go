package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/octofit/tracker-api/controllers"
)

func SetupLeaderboardRoutes(readOpen *gin.RouterGroup, leaderboardController *controllers.LeaderboardController) {
	leaderboard := readOpen.Group("/leaderboard")
	{
		leaderboard.GET("/", leaderboardController.GetLeaderboard)
		leaderboard.GET("/top_performers/", leaderboardController.TopPerformers)
	}
}
