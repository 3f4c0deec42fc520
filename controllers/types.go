package controllers

import (
	"time"

	"github.com/google/uuid"
	"github.com/octofit/tracker-api/models"
)

// Read-side representations. Server-assigned fields only ever come from the
// persisted record, never from request bodies.

type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, NewUserResponse(u))
	}
	return responses
}

type ProfileResponse struct {
	ID             uint         `json:"id"`
	User           UserResponse `json:"user"`
	Bio            string       `json:"bio"`
	ProfilePicture string       `json:"profile_picture"`
	FitnessLevel   string       `json:"fitness_level"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func NewProfileResponse(p models.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		User:           NewUserResponse(p.User),
		Bio:            p.Bio,
		ProfilePicture: p.ProfilePicture,
		FitnessLevel:   p.FitnessLevel,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

type TeamResponse struct {
	ID          uuid.UUID      `json:"_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Owner       UserResponse   `json:"owner"`
	Members     []UserResponse `json:"members"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func NewTeamResponse(t models.Team) TeamResponse {
	return TeamResponse{
		ID:          t.PublicID,
		Name:        t.Name,
		Description: t.Description,
		Owner:       NewUserResponse(t.Owner),
		Members:     NewUserResponses(t.Members),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type ActivityResponse struct {
	ID              uuid.UUID    `json:"_id"`
	User            UserResponse `json:"user"`
	ActivityType    string       `json:"activity_type"`
	DurationMinutes int          `json:"duration_minutes"`
	DistanceKm      *float64     `json:"distance_km"`
	CaloriesBurned  *int         `json:"calories_burned"`
	Description     string       `json:"description"`
	ActivityDate    time.Time    `json:"activity_date"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func NewActivityResponse(a models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:              a.PublicID,
		User:            NewUserResponse(a.User),
		ActivityType:    a.ActivityType,
		DurationMinutes: a.DurationMinutes,
		DistanceKm:      a.DistanceKm,
		CaloriesBurned:  a.CaloriesBurned,
		Description:     a.Description,
		ActivityDate:    a.ActivityDate,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

type LeaderboardResponse struct {
	ID                   uuid.UUID    `json:"_id"`
	Team                 TeamResponse `json:"team"`
	User                 UserResponse `json:"user"`
	TotalActivities      int          `json:"total_activities"`
	TotalCalories        int          `json:"total_calories"`
	TotalDistance        float64      `json:"total_distance"`
	TotalDurationMinutes int          `json:"total_duration_minutes"`
	Rank                 int          `json:"rank"`
	Points               int          `json:"points"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

func NewLeaderboardResponse(l models.Leaderboard) LeaderboardResponse {
	return LeaderboardResponse{
		ID:                   l.PublicID,
		Team:                 NewTeamResponse(l.Team),
		User:                 NewUserResponse(l.User),
		TotalActivities:      l.TotalActivities,
		TotalCalories:        l.TotalCalories,
		TotalDistance:        l.TotalDistance,
		TotalDurationMinutes: l.TotalDurationMinutes,
		Rank:                 l.Rank,
		Points:               l.Points,
		UpdatedAt:            l.UpdatedAt,
	}
}

type WorkoutResponse struct {
	ID               uuid.UUID    `json:"_id"`
	User             UserResponse `json:"user"`
	FitnessLevel     string       `json:"fitness_level"`
	WorkoutType      string       `json:"workout_type"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	DurationMinutes  int          `json:"duration_minutes"`
	Exercises        []string     `json:"exercises"`
	DifficultyRating int          `json:"difficulty_rating"`
	SuggestedDate    time.Time    `json:"suggested_date"`
	IsCompleted      bool         `json:"is_completed"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

func NewWorkoutResponse(w models.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:               w.PublicID,
		User:             NewUserResponse(w.User),
		FitnessLevel:     w.FitnessLevel,
		WorkoutType:      w.WorkoutType,
		Title:            w.Title,
		Description:      w.Description,
		DurationMinutes:  w.DurationMinutes,
		Exercises:        w.Exercises,
		DifficultyRating: w.DifficultyRating,
		SuggestedDate:    w.SuggestedDate,
		IsCompleted:      w.IsCompleted,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func NewWorkoutResponses(workouts []models.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, 0, len(workouts))
	for _, w := range workouts {
		responses = append(responses, NewWorkoutResponse(w))
	}
	return responses
}

// StatisticsResponse is the aggregate over a user's activities.
type StatisticsResponse struct {
	TotalActivities      int64   `json:"total_activities"`
	TotalCalories        int64   `json:"total_calories"`
	TotalDistance        float64 `json:"total_distance"`
	TotalDurationMinutes int64   `json:"total_duration_minutes"`
}
