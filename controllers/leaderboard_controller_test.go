package controllers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/octofit/tracker-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createStanding(t *testing.T, db *gorm.DB, team models.Team, user models.User, rank int) models.Leaderboard {
	t.Helper()

	standing := models.Leaderboard{
		TeamID:               team.ID,
		UserID:               user.ID,
		TotalActivities:      rank * 2,
		TotalDurationMinutes: rank * 30,
		Rank:                 rank,
		Points:               100 / rank,
	}
	if err := db.Create(&standing).Error; err != nil {
		t.Fatalf("Failed to create leaderboard standing: %v", err)
	}
	return standing
}

func TestLeaderboardOrderedByRank(t *testing.T) {
	r, db := setupTest(t)
	ironman := createUser(t, db, "ironman")
	batman := createUser(t, db, "batman")
	marvel := createTeam(t, db, ironman, "Team Marvel")
	dc := createTeam(t, db, batman, "Team DC")
	createStanding(t, db, dc, batman, 2)
	createStanding(t, db, marvel, ironman, 1)

	w := performRequest(t, r, "GET", "/api/leaderboard/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []struct {
		Rank int `json:"rank"`
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeJSON(t, w, &entries)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "ironman", entries[0].User.Username)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestLeaderboardTeamFilter(t *testing.T) {
	r, db := setupTest(t)
	ironman := createUser(t, db, "ironman")
	batman := createUser(t, db, "batman")
	marvel := createTeam(t, db, ironman, "Team Marvel")
	dc := createTeam(t, db, batman, "Team DC")
	createStanding(t, db, marvel, ironman, 1)
	createStanding(t, db, dc, batman, 2)

	w := performRequest(t, r, "GET", "/api/leaderboard/?team_id="+dc.PublicID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []struct {
		Team struct {
			Name string `json:"name"`
		} `json:"team"`
	}
	decodeJSON(t, w, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "Team DC", entries[0].Team.Name)
}

func TestLeaderboardUnknownTeamIsEmpty(t *testing.T) {
	r, db := setupTest(t)
	ironman := createUser(t, db, "ironman")
	marvel := createTeam(t, db, ironman, "Team Marvel")
	createStanding(t, db, marvel, ironman, 1)

	for _, param := range []string{uuid.NewString(), "not-a-uuid"} {
		w := performRequest(t, r, "GET", "/api/leaderboard/?team_id="+param, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var entries []struct{}
		decodeJSON(t, w, &entries)
		assert.Empty(t, entries)
	}
}

func TestTopPerformersLimit(t *testing.T) {
	r, db := setupTest(t)
	ironman := createUser(t, db, "ironman")
	for i := 1; i <= 12; i++ {
		team := createTeam(t, db, ironman, "Team "+uintToString(uint(i)))
		createStanding(t, db, team, ironman, i)
	}

	w := performRequest(t, r, "GET", "/api/leaderboard/top_performers/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []struct {
		Rank int `json:"rank"`
	}
	decodeJSON(t, w, &entries)
	require.Len(t, entries, 10)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank)
	}
}

func TestLeaderboardAllowsAnonymousRead(t *testing.T) {
	r, _ := setupTest(t)

	w := performRequest(t, r, "GET", "/api/leaderboard/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
