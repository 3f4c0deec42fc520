// Package seed populates the database with test data, replacing whatever
// is already there. Leaderboard standings are maintained out of band; this
// is the supported way to (re)create them in a development environment.
package seed

import (
	"time"

	"github.com/octofit/tracker-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultPassword = "octofit123"

type hero struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

var marvelHeroes = []hero{
	{"ironman", "ironman@marvel.com", "Tony", "Stark"},
	{"captainamerica", "cap@marvel.com", "Steve", "Rogers"},
	{"blackwidow", "widow@marvel.com", "Natasha", "Romanoff"},
}

var dcHeroes = []hero{
	{"batman", "batman@dc.com", "Bruce", "Wayne"},
	{"superman", "superman@dc.com", "Clark", "Kent"},
	{"wonderwoman", "wonderwoman@dc.com", "Diana", "Prince"},
}

func createUsers(db *gorm.DB, heroes []hero) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	password := string(hashed)

	users := make([]models.User, 0, len(heroes))
	for _, h := range heroes {
		user := models.User{
			Username:  h.Username,
			Email:     h.Email,
			FirstName: h.FirstName,
			LastName:  h.LastName,
			Password:  &password,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// Run wipes and repopulates every collection with the hero test data.
func Run(db *gorm.DB) error {
	for _, table := range []string{
		"team_members", "leaderboard", "workouts", "activities",
		"user_profiles", "teams", "refresh_tokens", "users",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}

	marvelUsers, err := createUsers(db, marvelHeroes)
	if err != nil {
		return err
	}
	dcUsers, err := createUsers(db, dcHeroes)
	if err != nil {
		return err
	}
	allUsers := append(append([]models.User{}, marvelUsers...), dcUsers...)

	for _, user := range allUsers {
		profile := models.UserProfile{
			UserID:       user.ID,
			FitnessLevel: models.FitnessLevelBeginner,
		}
		if err := db.Create(&profile).Error; err != nil {
			return err
		}
	}

	marvelTeam := models.Team{
		Name:        "Team Marvel",
		Description: "Marvel Super Heroes",
		OwnerID:     marvelUsers[0].ID,
		Members:     marvelUsers,
	}
	if err := db.Create(&marvelTeam).Error; err != nil {
		return err
	}

	dcTeam := models.Team{
		Name:        "Team DC",
		Description: "DC Super Heroes",
		OwnerID:     dcUsers[0].ID,
		Members:     dcUsers,
	}
	if err := db.Create(&dcTeam).Error; err != nil {
		return err
	}

	now := time.Now()
	for _, user := range marvelUsers {
		distance := 5.0
		calories := 300
		activity := models.Activity{
			UserID:          user.ID,
			ActivityType:    models.ActivityTypeRunning,
			DurationMinutes: 30,
			DistanceKm:      &distance,
			CaloriesBurned:  &calories,
			Description:     "Morning run",
			ActivityDate:    now,
		}
		if err := db.Create(&activity).Error; err != nil {
			return err
		}
	}
	for _, user := range dcUsers {
		distance := 15.0
		calories := 500
		activity := models.Activity{
			UserID:          user.ID,
			ActivityType:    models.ActivityTypeCycling,
			DurationMinutes: 45,
			DistanceKm:      &distance,
			CaloriesBurned:  &calories,
			Description:     "Evening ride",
			ActivityDate:    now,
		}
		if err := db.Create(&activity).Error; err != nil {
			return err
		}
	}

	for _, user := range allUsers {
		workout := models.Workout{
			UserID:           user.ID,
			FitnessLevel:     models.FitnessLevelBeginner,
			WorkoutType:      models.WorkoutTypeCardio,
			Title:            "Hero Cardio",
			Description:      "Superhero cardio workout",
			DurationMinutes:  40,
			Exercises:        []string{"Warm-up", "Cardio", "Cool-down"},
			DifficultyRating: 7,
			SuggestedDate:    now.Add(24 * time.Hour),
		}
		if err := db.Create(&workout).Error; err != nil {
			return err
		}
	}

	// One standing per team: the leaderboard's team reference is 1:1.
	standings := []models.Leaderboard{
		{
			TeamID:               marvelTeam.ID,
			UserID:               marvelUsers[0].ID,
			TotalActivities:      len(marvelUsers),
			TotalCalories:        300 * len(marvelUsers),
			TotalDistance:        5.0 * float64(len(marvelUsers)),
			TotalDurationMinutes: 30 * len(marvelUsers),
			Rank:                 1,
			Points:               100,
		},
		{
			TeamID:               dcTeam.ID,
			UserID:               dcUsers[0].ID,
			TotalActivities:      len(dcUsers),
			TotalCalories:        500 * len(dcUsers),
			TotalDistance:        15.0 * float64(len(dcUsers)),
			TotalDurationMinutes: 45 * len(dcUsers),
			Rank:                 2,
			Points:               200,
		},
	}
	for i := range standings {
		if err := db.Create(&standings[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
