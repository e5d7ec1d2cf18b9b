package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waypoint/internal/config"
	"waypoint/internal/database"
	"waypoint/internal/models"
	"waypoint/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWTSecret:         "test-secret-at-least-32-characters-long",
		Port:              "0",
		Env:               "test",
		StorageDir:        t.TempDir(),
		AvatarMaxUploadMB: 5,
	}
}

// newTestServer builds a server over in-memory SQLite with routes mounted.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	cfg := testConfig(t)
	files, err := storage.NewLocalStorage(cfg.StorageDir, "")
	require.NoError(t, err)

	s, err := NewServerWithDeps(cfg, db, nil, files)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// createAccount inserts an account directly and returns a signed token for it.
func createAccount(t *testing.T, s *Server, email string, role models.Role) (*models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{Email: email, Password: string(hashed), Role: role}
	require.NoError(t, s.db.Create(user).Error)

	token, err := s.generateToken(user)
	require.NoError(t, err)
	return user, token
}

func jsonRequest(t *testing.T, method, target, token string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func timeParse(date string) (time.Time, error) {
	return time.Parse("2006-01-02", date)
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
