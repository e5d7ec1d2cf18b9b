package server

import (
	"net/http"
	"testing"

	"waypoint/internal/models"
	"waypoint/internal/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyGoalHandlers_GetReturnsTransientDefault(t *testing.T) {
	s, app := newTestServer(t)
	_, token := createAccount(t, s, "d@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/daily-goals/2024-06-01", token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	goal := decodeBody[models.DailyGoal](t, resp)
	assert.Empty(t, goal.ID)
	assert.Equal(t, models.DefaultMood, goal.Mood)

	var count int64
	require.NoError(t, s.db.Model(&wire.DailyGoalRow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDailyGoalHandlers_PutUpsertsSingleRecord(t *testing.T) {
	s, app := newTestServer(t)
	user, token := createAccount(t, s, "d2@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/daily-goals/2024-06-01", token, map[string]any{
		"studyHours": 2.5,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := decodeBody[models.DailyGoal](t, resp)
	assert.Equal(t, 2.5, first.StudyHours)

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/daily-goals/2024-06-01", token, map[string]any{
		"reflection": "Good day",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decodeBody[models.DailyGoal](t, resp)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2.5, second.StudyHours)
	assert.Equal(t, "Good day", second.Reflection)

	var count int64
	require.NoError(t, s.db.Model(&wire.DailyGoalRow{}).
		Where("user_id = ?", user.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDailyGoalHandlers_BadDateIs400(t *testing.T) {
	s, app := newTestServer(t)
	_, token := createAccount(t, s, "d3@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/daily-goals/june-1st", token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/daily-goals/june-1st", token, map[string]any{
		"mood": 4,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDailyGoalHandlers_MoodOutOfRangeIs400(t *testing.T) {
	s, app := newTestServer(t)
	_, token := createAccount(t, s, "d4@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/daily-goals/2024-06-01", token, map[string]any{
		"mood": 11,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
