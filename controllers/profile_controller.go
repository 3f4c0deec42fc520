package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/octofit/tracker-api/models"
	"github.com/octofit/tracker-api/utils"
	"gorm.io/gorm"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// scoped restricts profile visibility: staff see every profile, everyone
// else only their own.
func (pc *ProfileController) scoped(c *gin.Context) *gorm.DB {
	user := utils.GetUser(c)
	query := pc.DB.Model(&models.UserProfile{}).Preload("User")
	if user.IsStaff {
		return query
	}
	return query.Where("user_id = ?", user.UserID)
}

func (pc *ProfileController) CreateProfile(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		Bio            string `json:"bio"`
		ProfilePicture string `json:"profile_picture"`
		FitnessLevel   string `json:"fitness_level"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.FitnessLevel == "" {
		input.FitnessLevel = models.FitnessLevelBeginner
	}
	if !models.ValidFitnessLevel(input.FitnessLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fitness level"})
		return
	}

	// One profile per user. The user field always comes from the
	// authenticated requester, never from the request body.
	profile := models.UserProfile{
		UserID:         user.UserID,
		Bio:            input.Bio,
		ProfilePicture: input.ProfilePicture,
		FitnessLevel:   input.FitnessLevel,
	}

	if err := pc.DB.Create(&profile).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile already exists"})
		return
	}

	pc.DB.Preload("User").First(&profile, profile.ID)
	c.JSON(http.StatusCreated, NewProfileResponse(profile))
}

func (pc *ProfileController) ListProfiles(c *gin.Context) {
	var profiles []models.UserProfile
	if err := pc.scoped(c).Order("id").Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching profiles: " + err.Error()})
		return
	}

	responses := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, NewProfileResponse(p))
	}
	c.JSON(http.StatusOK, responses)
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := pc.scoped(c).Where("id = ?", c.Param("id")).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, NewProfileResponse(profile))
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := pc.scoped(c).Where("id = ?", c.Param("id")).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	var input struct {
		Bio            *string `json:"bio"`
		ProfilePicture *string `json:"profile_picture"`
		FitnessLevel   *string `json:"fitness_level"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.ProfilePicture != nil {
		profile.ProfilePicture = *input.ProfilePicture
	}
	if input.FitnessLevel != nil {
		if !models.ValidFitnessLevel(*input.FitnessLevel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fitness level"})
			return
		}
		profile.FitnessLevel = *input.FitnessLevel
	}

	if err := pc.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, NewProfileResponse(profile))
}

func (pc *ProfileController) DeleteProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := pc.scoped(c).Where("id = ?", c.Param("id")).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	if err := pc.DB.Delete(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile"})
		return
	}

	c.Status(http.StatusNoContent)
}
