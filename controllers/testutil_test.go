package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/octofit/tracker-api/config"
	"github.com/octofit/tracker-api/models"
	"github.com/octofit/tracker-api/routes"
	"github.com/octofit/tracker-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTest creates an in-memory SQLite database and a router with the
// full route table registered against it.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// A pooled second connection would see a different :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.MigrateModels(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("testpass123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	password := string(hashed)

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: &password,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %q: %v", username, err)
	}
	return user
}

func createStaffUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := createUser(t, db, username)
	if err := db.Model(&user).Update("is_staff", true).Error; err != nil {
		t.Fatalf("Failed to promote user %q: %v", username, err)
	}
	user.IsStaff = true
	return user
}

func createProfile(t *testing.T, db *gorm.DB, user models.User, fitnessLevel string) models.UserProfile {
	t.Helper()

	profile := models.UserProfile{
		UserID:       user.ID,
		FitnessLevel: fitnessLevel,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to create profile for %q: %v", user.Username, err)
	}
	return profile
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	accessToken, _, err := utils.GenerateTokenPair(user.ID, user.IsStaff)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return accessToken
}

// performRequest issues a request against the router. An empty token means
// an anonymous request; a non-nil body is sent as JSON.
func performRequest(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func uintToString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}

func createActivity(t *testing.T, db *gorm.DB, user models.User, durationMinutes int, distanceKm *float64, caloriesBurned *int) models.Activity {
	t.Helper()

	activity := models.Activity{
		UserID:          user.ID,
		ActivityType:    models.ActivityTypeRunning,
		DurationMinutes: durationMinutes,
		DistanceKm:      distanceKm,
		CaloriesBurned:  caloriesBurned,
		ActivityDate:    time.Now(),
	}
	if err := db.Create(&activity).Error; err != nil {
		t.Fatalf("Failed to create activity: %v", err)
	}
	return activity
}

func createWorkout(t *testing.T, db *gorm.DB, user models.User, fitnessLevel string, completed bool, suggestedDate time.Time) models.Workout {
	t.Helper()

	workout := models.Workout{
		UserID:          user.ID,
		FitnessLevel:    fitnessLevel,
		WorkoutType:     models.WorkoutTypeCardio,
		Title:           "Test Workout",
		DurationMinutes: 30,
		Exercises:       []string{"Warm-up", "Main set", "Cool-down"},
		SuggestedDate:   suggestedDate,
		IsCompleted:     completed,
	}
	if err := db.Create(&workout).Error; err != nil {
		t.Fatalf("Failed to create workout: %v", err)
	}
	return workout
}

func createTeam(t *testing.T, db *gorm.DB, owner models.User, name string) models.Team {
	t.Helper()

	team := models.Team{
		Name:    name,
		OwnerID: owner.ID,
	}
	if err := db.Create(&team).Error; err != nil {
		t.Fatalf("Failed to create team %q: %v", name, err)
	}
	return team
}
