package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/octofit/tracker-api/controllers"
)

func SetupProfileRoutes(protected *gin.RouterGroup, profileController *controllers.ProfileController) {
	profiles := protected.Group("/profiles")
	{
		profiles.GET("/", profileController.ListProfiles)
		profiles.POST("/", profileController.CreateProfile)
		profiles.GET("/:id/", profileController.GetProfile)
		profiles.PUT("/:id/", profileController.UpdateProfile)
		profiles.DELETE("/:id/", profileController.DeleteProfile)
	}
}
