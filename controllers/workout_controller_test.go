package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/octofit/tracker-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkoutDefaults(t *testing.T) {
	r, db := setupTest(t)
	user := createUser(t, db, "ironman")

	w := performRequest(t, r, "POST", "/api/workouts/", tokenFor(t, user), map[string]interface{}{
		"fitness_level":    "beginner",
		"workout_type":     "cardio",
		"title":            "Morning Run",
		"duration_minutes": 30,
		"exercises":        []string{"Warm-up", "Run", "Stretch"},
		"suggested_date":   time.Now().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var workout models.Workout
	require.NoError(t, db.First(&workout).Error)
	assert.Equal(t, user.ID, workout.UserID)
	assert.False(t, workout.IsCompleted)
	assert.Equal(t, 5, workout.DifficultyRating)
}

func TestCreateWorkoutRejectsInvalidEnums(t *testing.T) {
	r, db := setupTest(t)
	user := createUser(t, db, "ironman")
	token := tokenFor(t, user)

	base := func() map[string]interface{} {
		return map[string]interface{}{
			"fitness_level":    "beginner",
			"workout_type":     "cardio",
			"title":            "Morning Run",
			"duration_minutes": 30,
			"suggested_date":   time.Now().Format(time.RFC3339),
		}
	}

	body := base()
	body["fitness_level"] = "expert"
	w := performRequest(t, r, "POST", "/api/workouts/", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = base()
	body["workout_type"] = "swimming"
	w = performRequest(t, r, "POST", "/api/workouts/", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = base()
	body["difficulty_rating"] = 11
	w = performRequest(t, r, "POST", "/api/workouts/", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListWorkoutsOwnerScoped(t *testing.T) {
	r, db := setupTest(t)
	user := createUser(t, db, "ironman")
	other := createUser(t, db, "batman")
	createWorkout(t, db, user, models.FitnessLevelBeginner, false, time.Now())
	createWorkout(t, db, other, models.FitnessLevelBeginner, false, time.Now())

	w := performRequest(t, r, "GET", "/api/workouts/", tokenFor(t, user), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var workouts []struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeJSON(t, w, &workouts)
	require.Len(t, workouts, 1)
	assert.Equal(t, "ironman", workouts[0].User.Username)
}

func TestListWorkoutsCompletedFilter(t *testing.T) {
	r, db := setupTest(t)
	user := createUser(t, db, "ironman")
	done := createWorkout(t, db, user, models.FitnessLevelBeginner, true, time.Now())
	pending := createWorkout(t, db, user, models.FitnessLevelBeginner, false, time.Now())
	token := tokenFor(t, user)

	var workouts []struct {
		ID string `json:"_id"`
	}

	// The filter compares case-insensitively against "true".
	w := performRequest(t, r, "GET", "/api/workouts/?completed=TRUE", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &workouts)
	require.Len(t, workouts, 1)
	assert.Equal(t, done.PublicID.String(), workouts[0].ID)

	// Any other value selects the incomplete ones.
	w = performRequest(t, r, "GET", "/api/workouts/?completed=false", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &workouts)
	require.Len(t, workouts, 1)
	assert.Equal(t, pending.PublicID.String(), workouts[0].ID)
}

func TestMarkCompleteIsIdempotent(t *testing.T) {
	r, db := setupTest(t)
	user := createUser(t, db, "ironman")
	workout := createWorkout(t, db, user, models.FitnessLevelBeginner, false, time.Now())
	token := tokenFor(t, user)
	path := "/api/workouts/" + workout.PublicID.String() + "/mark_complete/"

	for i := 0; i < 2; i++ {
		w := performRequest(t, r, "POST", path, token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			IsCompleted bool `json:"is_completed"`
		}
		decodeJSON(t, w, &body)
		assert.True(t, body.IsCompleted)
	}

	var stored models.Workout
	require.NoError(t, db.First(&stored, workout.ID).Error)
	assert.True(t, stored.IsCompleted)
}

func TestWorkoutOfAnotherUserIsNotFound(t *testing.T) {
	r, db := setupTest(t)
	user := createUser(t, db, "ironman")
	other := createUser(t, db, "batman")
	workout := createWorkout(t, db, other, models.FitnessLevelBeginner, false, time.Now())
	token := tokenFor(t, user)

	for _, req := range []struct {
		method string
		path   string
	}{
		{"GET", "/api/workouts/" + workout.PublicID.String() + "/"},
		{"POST", "/api/workouts/" + workout.PublicID.String() + "/mark_complete/"},
		{"DELETE", "/api/workouts/" + workout.PublicID.String() + "/"},
	} {
		w := performRequest(t, r, req.method, req.path, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", req.method, req.path)
	}
}

func TestSuggestionsRequireProfile(t *testing.T) {
	r, db := setupTest(t)
	user := createUser(t, db, "ironman")

	w := performRequest(t, r, "GET", "/api/workouts/suggestions/", tokenFor(t, user), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuggestionsMatchProfileLevelAndOrder(t *testing.T) {
	r, db := setupTest(t)
	user := createUser(t, db, "ironman")
	createProfile(t, db, user, models.FitnessLevelBeginner)

	later := createWorkout(t, db, user, models.FitnessLevelBeginner, false, time.Now().Add(48*time.Hour))
	sooner := createWorkout(t, db, user, models.FitnessLevelBeginner, false, time.Now().Add(24*time.Hour))
	createWorkout(t, db, user, models.FitnessLevelIntermediate, false, time.Now())
	createWorkout(t, db, user, models.FitnessLevelBeginner, true, time.Now())

	w := performRequest(t, r, "GET", "/api/workouts/suggestions/", tokenFor(t, user), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var workouts []struct {
		ID string `json:"_id"`
	}
	decodeJSON(t, w, &workouts)
	require.Len(t, workouts, 2)
	assert.Equal(t, sooner.PublicID.String(), workouts[0].ID)
	assert.Equal(t, later.PublicID.String(), workouts[1].ID)
}
