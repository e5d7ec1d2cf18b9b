package server

import (
	"net/http"
	"testing"

	"waypoint/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioHandlers_Lifecycle(t *testing.T) {
	s, app := newTestServer(t)
	_, token := createAccount(t, s, "pf@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/portfolio/", token, map[string]any{
		"type":  "project",
		"title": "URL shortener",
		"tags":  []string{"go"},
		"links": map[string]string{"github": "https://github.com/x/short"},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[models.PortfolioItem](t, resp)
	require.NotEmpty(t, created.ID)

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/portfolio/"+created.ID, token, map[string]any{
		"tags": []string{"go", "redis"},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[models.PortfolioItem](t, resp)
	assert.Equal(t, []string{"go", "redis"}, updated.Tags)
	assert.Equal(t, "URL shortener", updated.Title)

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/portfolio/"+created.ID, token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/portfolio/", token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decodeBody[[]models.PortfolioItem](t, resp)
	assert.Empty(t, items)
}

func TestPortfolioHandlers_DeleteMissingSucceeds(t *testing.T) {
	s, app := newTestServer(t)
	_, token := createAccount(t, s, "pf2@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/api/portfolio/nonexistent-id", token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestPortfolioHandlers_InvalidTypeIs400(t *testing.T) {
	s, app := newTestServer(t)
	_, token := createAccount(t, s, "pf3@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/portfolio/some-id", token, map[string]any{
		"type": "sculpture",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
