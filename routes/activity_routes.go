package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/octofit/tracker-api/controllers"
)

func SetupActivityRoutes(protected *gin.RouterGroup, activityController *controllers.ActivityController) {
	activities := protected.Group("/activities")
	{
		activities.GET("/", activityController.ListActivities)
		activities.POST("/", activityController.CreateActivity)
		activities.GET("/statistics/", activityController.Statistics)
		activities.GET("/:id/", activityController.GetActivity)
		activities.PUT("/:id/", activityController.UpdateActivity)
		activities.DELETE("/:id/", activityController.DeleteActivity)
	}
}
