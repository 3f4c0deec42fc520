package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/octofit/tracker-api/models"
	"github.com/octofit/tracker-api/utils"
	"gorm.io/gorm"
)

type WorkoutController struct {
	DB *gorm.DB
}

func NewWorkoutController(db *gorm.DB) *WorkoutController {
	return &WorkoutController{DB: db}
}

// scoped limits every workout lookup to the requester's own records.
func (wc *WorkoutController) scoped(c *gin.Context) *gorm.DB {
	user := utils.GetUser(c)
	return wc.DB.Model(&models.Workout{}).Where("user_id = ?", user.UserID)
}

func (wc *WorkoutController) CreateWorkout(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		FitnessLevel     string     `json:"fitness_level" binding:"required"`
		WorkoutType      string     `json:"workout_type" binding:"required"`
		Title            string     `json:"title" binding:"required,max=100"`
		Description      string     `json:"description"`
		DurationMinutes  int        `json:"duration_minutes" binding:"required,gt=0"`
		Exercises        []string   `json:"exercises"`
		DifficultyRating *int       `json:"difficulty_rating" binding:"omitempty,min=1,max=10"`
		SuggestedDate    *time.Time `json:"suggested_date" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidFitnessLevel(input.FitnessLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fitness level"})
		return
	}
	if !models.ValidWorkoutType(input.WorkoutType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workout type"})
		return
	}

	difficultyRating := 5
	if input.DifficultyRating != nil {
		difficultyRating = *input.DifficultyRating
	}

	workout := models.Workout{
		UserID:           user.UserID,
		FitnessLevel:     input.FitnessLevel,
		WorkoutType:      input.WorkoutType,
		Title:            input.Title,
		Description:      input.Description,
		DurationMinutes:  input.DurationMinutes,
		Exercises:        pq.StringArray(input.Exercises),
		DifficultyRating: difficultyRating,
		SuggestedDate:    *input.SuggestedDate,
	}

	if err := wc.DB.Create(&workout).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workout"})
		return
	}

	wc.DB.Preload("User").First(&workout, workout.ID)
	c.JSON(http.StatusCreated, NewWorkoutResponse(workout))
}

// ListWorkouts returns the requester's workouts, optionally filtered by
// completion state via ?completed=true|false (case-insensitive).
func (wc *WorkoutController) ListWorkouts(c *gin.Context) {
	query := wc.scoped(c).Preload("User")
	if completedParam := c.Query("completed"); completedParam != "" {
		completed := strings.EqualFold(completedParam, "true")
		query = query.Where("is_completed = ?", completed)
	}

	var workouts []models.Workout
	if err := query.Order("id").Find(&workouts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching workouts: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, NewWorkoutResponses(workouts))
}

func (wc *WorkoutController) findWorkout(c *gin.Context) (models.Workout, bool) {
	var workout models.Workout
	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return workout, false
	}

	if err := wc.scoped(c).Preload("User").Where("public_id = ?", workoutID).First(&workout).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return workout, false
	}
	return workout, true
}

func (wc *WorkoutController) GetWorkout(c *gin.Context) {
	workout, ok := wc.findWorkout(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, NewWorkoutResponse(workout))
}

func (wc *WorkoutController) UpdateWorkout(c *gin.Context) {
	workout, ok := wc.findWorkout(c)
	if !ok {
		return
	}

	var input struct {
		FitnessLevel     *string    `json:"fitness_level"`
		WorkoutType      *string    `json:"workout_type"`
		Title            *string    `json:"title"`
		Description      *string    `json:"description"`
		DurationMinutes  *int       `json:"duration_minutes"`
		Exercises        *[]string  `json:"exercises"`
		DifficultyRating *int       `json:"difficulty_rating"`
		SuggestedDate    *time.Time `json:"suggested_date"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.FitnessLevel != nil {
		if !models.ValidFitnessLevel(*input.FitnessLevel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fitness level"})
			return
		}
		workout.FitnessLevel = *input.FitnessLevel
	}
	if input.WorkoutType != nil {
		if !models.ValidWorkoutType(*input.WorkoutType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workout type"})
			return
		}
		workout.WorkoutType = *input.WorkoutType
	}
	if input.Title != nil {
		if *input.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		workout.Title = *input.Title
	}
	if input.Description != nil {
		workout.Description = *input.Description
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration_minutes must be positive"})
			return
		}
		workout.DurationMinutes = *input.DurationMinutes
	}
	if input.Exercises != nil {
		workout.Exercises = pq.StringArray(*input.Exercises)
	}
	if input.DifficultyRating != nil {
		if *input.DifficultyRating < 1 || *input.DifficultyRating > 10 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "difficulty_rating must be between 1 and 10"})
			return
		}
		workout.DifficultyRating = *input.DifficultyRating
	}
	if input.SuggestedDate != nil {
		workout.SuggestedDate = *input.SuggestedDate
	}

	if err := wc.DB.Save(&workout).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update workout"})
		return
	}

	c.JSON(http.StatusOK, NewWorkoutResponse(workout))
}

func (wc *WorkoutController) DeleteWorkout(c *gin.Context) {
	workout, ok := wc.findWorkout(c)
	if !ok {
		return
	}

	if err := wc.DB.Delete(&workout).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workout"})
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkComplete flips a workout to completed. Re-marking a completed
// workout succeeds without changing anything.
func (wc *WorkoutController) MarkComplete(c *gin.Context) {
	workout, ok := wc.findWorkout(c)
	if !ok {
		return
	}

	if !workout.IsCompleted {
		workout.IsCompleted = true
		if err := wc.DB.Save(&workout).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update workout"})
			return
		}
	}

	c.JSON(http.StatusOK, NewWorkoutResponse(workout))
}

// Suggestions returns the requester's incomplete workouts matching their
// profile fitness level, soonest suggested date first.
func (wc *WorkoutController) Suggestions(c *gin.Context) {
	user := utils.GetUser(c)

	var profile models.UserProfile
	if err := wc.DB.Where("user_id = ?", user.UserID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User profile not found"})
		return
	}

	var workouts []models.Workout
	err := wc.scoped(c).Preload("User").
		Where("fitness_level = ? AND is_completed = ?", profile.FitnessLevel, false).
		Order("suggested_date").
		Find(&workouts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching workouts: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, NewWorkoutResponses(workouts))
}
