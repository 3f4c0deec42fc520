package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/octofit/tracker-api/models"
	"github.com/octofit/tracker-api/utils"
	"gorm.io/gorm"
)

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

// scoped returns the activity query for this request: all activities of the
// user named by ?user_id= when present (broad read, no ownership gate),
// otherwise the requester's own.
func (ac *ActivityController) scoped(c *gin.Context) *gorm.DB {
	query := ac.DB.Model(&models.Activity{})
	if param := c.Query("user_id"); param != "" {
		// Postgres rejects non-numeric text compared against an integer
		// column, so parse first; a malformed id matches nothing.
		userID, _ := strconv.ParseUint(param, 10, 64)
		return query.Where("user_id = ?", userID)
	}
	user := utils.GetUser(c)
	return query.Where("user_id = ?", user.UserID)
}

func (ac *ActivityController) CreateActivity(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		ActivityType    string     `json:"activity_type"`
		DurationMinutes int        `json:"duration_minutes" binding:"required,gt=0"`
		DistanceKm      *float64   `json:"distance_km"`
		CaloriesBurned  *int       `json:"calories_burned"`
		Description     string     `json:"description"`
		ActivityDate    *time.Time `json:"activity_date" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ActivityType == "" {
		input.ActivityType = models.ActivityTypeOther
	}
	if !models.ValidActivityType(input.ActivityType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity type"})
		return
	}

	activity := models.Activity{
		UserID:          user.UserID,
		ActivityType:    input.ActivityType,
		DurationMinutes: input.DurationMinutes,
		DistanceKm:      input.DistanceKm,
		CaloriesBurned:  input.CaloriesBurned,
		Description:     input.Description,
		ActivityDate:    *input.ActivityDate,
	}

	if err := ac.DB.Create(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	ac.DB.Preload("User").First(&activity, activity.ID)
	c.JSON(http.StatusCreated, NewActivityResponse(activity))
}

func (ac *ActivityController) ListActivities(c *gin.Context) {
	var activities []models.Activity
	if err := ac.scoped(c).Preload("User").Order("activity_date DESC").Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching activities: " + err.Error()})
		return
	}

	responses := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		responses = append(responses, NewActivityResponse(a))
	}
	c.JSON(http.StatusOK, responses)
}

func (ac *ActivityController) findActivity(c *gin.Context) (models.Activity, bool) {
	var activity models.Activity
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return activity, false
	}

	if err := ac.scoped(c).Preload("User").Where("public_id = ?", activityID).First(&activity).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return activity, false
	}
	return activity, true
}

func (ac *ActivityController) GetActivity(c *gin.Context) {
	activity, ok := ac.findActivity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, NewActivityResponse(activity))
}

func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	activity, ok := ac.findActivity(c)
	if !ok {
		return
	}

	var input struct {
		ActivityType    *string    `json:"activity_type"`
		DurationMinutes *int       `json:"duration_minutes"`
		DistanceKm      *float64   `json:"distance_km"`
		CaloriesBurned  *int       `json:"calories_burned"`
		Description     *string    `json:"description"`
		ActivityDate    *time.Time `json:"activity_date"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ActivityType != nil {
		if !models.ValidActivityType(*input.ActivityType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity type"})
			return
		}
		activity.ActivityType = *input.ActivityType
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration_minutes must be positive"})
			return
		}
		activity.DurationMinutes = *input.DurationMinutes
	}
	if input.DistanceKm != nil {
		activity.DistanceKm = input.DistanceKm
	}
	if input.CaloriesBurned != nil {
		activity.CaloriesBurned = input.CaloriesBurned
	}
	if input.Description != nil {
		activity.Description = *input.Description
	}
	if input.ActivityDate != nil {
		activity.ActivityDate = *input.ActivityDate
	}

	if err := ac.DB.Save(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		return
	}

	c.JSON(http.StatusOK, NewActivityResponse(activity))
}

func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	activity, ok := ac.findActivity(c)
	if !ok {
		return
	}

	if err := ac.DB.Delete(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Statistics aggregates the same set of activities List returns. Optional
// fields count as zero when absent.
func (ac *ActivityController) Statistics(c *gin.Context) {
	var stats StatisticsResponse
	err := ac.scoped(c).
		Select("COUNT(*) as total_activities, " +
			"COALESCE(SUM(calories_burned), 0) as total_calories, " +
			"COALESCE(SUM(distance_km), 0) as total_distance, " +
			"COALESCE(SUM(duration_minutes), 0) as total_duration_minutes").
		Scan(&stats).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing statistics: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
