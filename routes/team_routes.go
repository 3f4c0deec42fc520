package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/octofit/tracker-api/controllers"
)

func SetupTeamRoutes(protected *gin.RouterGroup, teamController *controllers.TeamController) {
	teams := protected.Group("/teams")
	{
		teams.GET("/", teamController.ListTeams)
		teams.POST("/", teamController.CreateTeam)
		teams.GET("/:id/", teamController.GetTeam)
		teams.PUT("/:id/", teamController.UpdateTeam)
		teams.DELETE("/:id/", teamController.DeleteTeam)

		// Membership actions
		teams.POST("/:id/add_member/", teamController.AddMember)
		teams.POST("/:id/remove_member/", teamController.RemoveMember)
	}
}
