package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"waypoint/internal/models"
	"waypoint/internal/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProfileRow(t *testing.T, s *Server, userID uint, name string, role models.Role) {
	t.Helper()
	row := wire.ProfileToRow(&models.UserProfile{UserID: userID, Role: role, Name: name})
	require.NoError(t, s.profileRepo.Create(context.Background(), row))
}

func TestAdminRoutes_StudentTokenIsForbidden(t *testing.T) {
	s, app := newTestServer(t)
	_, token := createAccount(t, s, "student@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/admin/students", token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminRoutes_ListStudentsExcludesCounselors(t *testing.T) {
	s, app := newTestServer(t)
	student, _ := createAccount(t, s, "s1@example.com", models.RoleStudent)
	admin, adminToken := createAccount(t, s, "c1@example.com", models.RoleAdmin)
	createProfileRow(t, s, student.ID, "Student One", models.RoleStudent)
	createProfileRow(t, s, admin.ID, "Counselor One", models.RoleAdmin)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/admin/students", adminToken, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	students := decodeBody[[]models.StudentRecord](t, resp)
	require.Len(t, students, 1)
	assert.Equal(t, "Student One", students[0].Profile.Name)
}

func TestAdminRoutes_CounselingLogAppendAndList(t *testing.T) {
	s, app := newTestServer(t)
	student, _ := createAccount(t, s, "s2@example.com", models.RoleStudent)
	admin, adminToken := createAccount(t, s, "c2@example.com", models.RoleAdmin)

	url := fmt.Sprintf("/api/admin/students/%d/logs", student.ID)
	resp, err := app.Test(jsonRequest(t, http.MethodPost, url, adminToken, map[string]any{
		"content": "Talked through internship plans",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	entry := decodeBody[models.CounselingLog](t, resp)
	assert.Equal(t, admin.ID, entry.CounselorID)
	assert.Equal(t, models.LogRegular, entry.Type)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, url, adminToken, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	logs := decodeBody[[]models.CounselingLog](t, resp)
	require.Len(t, logs, 1)
	assert.Equal(t, "Talked through internship plans", logs[0].Content)
}

func TestAdminRoutes_EmptyLogContentIs400(t *testing.T) {
	s, app := newTestServer(t)
	student, _ := createAccount(t, s, "s3@example.com", models.RoleStudent)
	_, adminToken := createAccount(t, s, "c3@example.com", models.RoleAdmin)

	url := fmt.Sprintf("/api/admin/students/%d/logs", student.ID)
	resp, err := app.Test(jsonRequest(t, http.MethodPost, url, adminToken, map[string]any{
		"content": "",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
