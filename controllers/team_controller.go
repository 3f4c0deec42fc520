package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/octofit/tracker-api/models"
	"github.com/octofit/tracker-api/utils"
	"gorm.io/gorm"
)

type TeamController struct {
	DB *gorm.DB
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db}
}

// findTeam resolves the :id path parameter to a team, preloading the
// owner and members for serialization.
func (tc *TeamController) findTeam(c *gin.Context) (models.Team, bool) {
	var team models.Team
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return team, false
	}

	if err := tc.DB.Preload("Owner").Preload("Members").Where("public_id = ?", teamID).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return team, false
	}
	return team, true
}

func (tc *TeamController) CreateTeam(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Owner is always the requester; members start empty and the owner is
	// not added automatically.
	team := models.Team{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     user.UserID,
	}

	if err := tc.DB.Create(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}

	tc.DB.Preload("Owner").Preload("Members").First(&team, team.ID)
	c.JSON(http.StatusCreated, NewTeamResponse(team))
}

func (tc *TeamController) ListTeams(c *gin.Context) {
	var teams []models.Team
	if err := tc.DB.Preload("Owner").Preload("Members").Order("id").Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching teams: " + err.Error()})
		return
	}

	responses := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		responses = append(responses, NewTeamResponse(t))
	}
	c.JSON(http.StatusOK, responses)
}

func (tc *TeamController) GetTeam(c *gin.Context) {
	team, ok := tc.findTeam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, NewTeamResponse(team))
}

func (tc *TeamController) UpdateTeam(c *gin.Context) {
	team, ok := tc.findTeam(c)
	if !ok {
		return
	}

	var input struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		if *input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Team name cannot be empty"})
			return
		}
		team.Name = *input.Name
	}
	if input.Description != nil {
		team.Description = *input.Description
	}

	if err := tc.DB.Save(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team"})
		return
	}

	c.JSON(http.StatusOK, NewTeamResponse(team))
}

func (tc *TeamController) DeleteTeam(c *gin.Context) {
	team, ok := tc.findTeam(c)
	if !ok {
		return
	}

	if err := tc.DB.Select("Members").Delete(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team"})
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMember adds a user to the team's members set. Adding a user who is
// already a member is a no-op, not an error.
func (tc *TeamController) AddMember(c *gin.Context) {
	team, ok := tc.findTeam(c)
	if !ok {
		return
	}

	var input struct {
		UserID uint `json:"user_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var member models.User
	if err := tc.DB.First(&member, input.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	for _, existing := range team.Members {
		if existing.ID == member.ID {
			c.JSON(http.StatusOK, gin.H{"status": "member added"})
			return
		}
	}

	if err := tc.DB.Model(&team).Association("Members").Append(&member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "member added"})
}

// RemoveMember removes a user from the members set. Removing a non-member
// is a no-op.
func (tc *TeamController) RemoveMember(c *gin.Context) {
	team, ok := tc.findTeam(c)
	if !ok {
		return
	}

	var input struct {
		UserID uint `json:"user_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var member models.User
	if err := tc.DB.First(&member, input.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := tc.DB.Model(&team).Association("Members").Delete(&member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "member removed"})
}
