package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/octofit/tracker-api/controllers"
)

func SetupWorkoutRoutes(protected *gin.RouterGroup, workoutController *controllers.WorkoutController) {
	workouts := protected.Group("/workouts")
	{
		workouts.GET("/", workoutController.ListWorkouts)
		workouts.POST("/", workoutController.CreateWorkout)
		workouts.GET("/suggestions/", workoutController.Suggestions)
		workouts.GET("/:id/", workoutController.GetWorkout)
		workouts.PUT("/:id/", workoutController.UpdateWorkout)
		workouts.DELETE("/:id/", workoutController.DeleteWorkout)
		workouts.POST("/:id/mark_complete/", workoutController.MarkComplete)
	}
}
