package store

import (
	"testing"

	"waypoint/internal/database"
	"waypoint/internal/models"
	"waypoint/internal/session"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func studentSession(userID uint) *session.Session {
	return &session.Session{UserID: userID, Email: "student@example.com", Role: models.RoleStudent}
}

func adminSession(userID uint) *session.Session {
	return &session.Session{UserID: userID, Email: "counselor@example.com", Role: models.RoleAdmin}
}
