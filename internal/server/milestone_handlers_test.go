package server

import (
	"net/http"
	"testing"

	"waypoint/internal/models"
	"waypoint/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMilestoneHandlers_Lifecycle(t *testing.T) {
	s, app := newTestServer(t)
	_, token := createAccount(t, s, "m@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/milestones/", token, map[string]any{
		"title":    "Learn Go",
		"category": "study",
		"tasks": []map[string]any{
			{"id": "t1", "title": "Tour of Go"},
			{"id": "t2", "title": "Build a CLI"},
		},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[models.Milestone](t, resp)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusNotStarted, created.Status)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/milestones/", token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed := decodeBody[[]models.Milestone](t, resp)
	require.Len(t, listed, 1)

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/milestones/"+created.ID, token, map[string]any{
		"tasks": []map[string]any{
			{"id": "t1", "title": "Tour of Go", "completed": true},
			{"id": "t2", "title": "Build a CLI"},
		},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[models.Milestone](t, resp)
	assert.Equal(t, 50, updated.Progress)
	assert.Equal(t, models.StatusInProgress, updated.Status)

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/milestones/"+created.ID, token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Idempotent delete.
	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/milestones/"+created.ID, token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestMilestoneHandlers_UpdateMissingIs404(t *testing.T) {
	s, app := newTestServer(t)
	_, token := createAccount(t, s, "m404@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/milestones/nonexistent", token, map[string]any{
		"title": "x",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMilestoneHandlers_InvalidCategoryIs400(t *testing.T) {
	s, app := newTestServer(t)
	_, token := createAccount(t, s, "mval@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/milestones/some-id", token, map[string]any{
		"category": "cooking",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApplyGuideTemplate_CreatesSequentialMilestones(t *testing.T) {
	s, app := newTestServer(t)
	require.NoError(t, seed.SeedGuides(s.db))
	_, token := createAccount(t, s, "apply@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/guides/", "", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	guides := decodeBody[[]models.CareerGuide](t, resp)
	require.NotEmpty(t, guides)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/guides/"+guides[0].ID+"/apply", token, map[string]any{
		"startDate": "2024-06-01",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[[]models.Milestone](t, resp)
	require.Len(t, created, len(guides[0].RoadmapTemplate))
	assert.Equal(t, "2024-06-01", created[0].StartDate)

	// Each step starts the day after the previous one ends.
	for i := 1; i < len(created); i++ {
		prevEnd, perr := timeParse(created[i-1].EndDate)
		require.NoError(t, perr)
		start, serr := timeParse(created[i].StartDate)
		require.NoError(t, serr)
		assert.Equal(t, prevEnd.AddDate(0, 0, 1), start)
	}
}

func TestApplyGuideTemplate_MissingGuideIs404(t *testing.T) {
	s, app := newTestServer(t)
	_, token := createAccount(t, s, "apply404@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/guides/nope/apply", token, map[string]any{
		"startDate": "2024-06-01",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
