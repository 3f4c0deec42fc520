package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/octofit/tracker-api/controllers"
	"github.com/octofit/tracker-api/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	profileController := controllers.NewProfileController(db)
	teamController := controllers.NewTeamController(db)
	activityController := controllers.NewActivityController(db)
	leaderboardController := controllers.NewLeaderboardController(db)
	workoutController := controllers.NewWorkoutController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.GET("/", apiRoot)
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
		public.POST("/auth/refresh", authController.RefreshToken)
	}

	// Read-open routes: anonymous reads allowed, principal attached when a
	// token is present.
	readOpen := r.Group("/api")
	readOpen.Use(middleware.OptionalAuthMiddleware())
	{
		readOpen.GET("/users/", userController.ListUsers)
		SetupLeaderboardRoutes(readOpen, leaderboardController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/auth/logout", authController.Logout)
		protected.GET("/users/me/", userController.Me)

		SetupProfileRoutes(protected, profileController)
		SetupTeamRoutes(protected, teamController)
		SetupActivityRoutes(protected, activityController)
		SetupWorkoutRoutes(protected, workoutController)
	}
}

// apiRoot mirrors the classic API index: a welcome message plus the list
// of top-level resource collections.
func apiRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to OctoFit Tracker API",
		"version": "1.0.0",
		"endpoints": []string{
			"/api/users/",
			"/api/profiles/",
			"/api/teams/",
			"/api/activities/",
			"/api/leaderboard/",
			"/api/workouts/",
		},
	})
}
