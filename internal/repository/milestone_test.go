package repository

import (
	"context"
	"errors"
	"testing"

	"waypoint/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestMilestoneRepository_ListByUserWrapsDriverError(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewMilestoneRepository(gdb)

	mock.ExpectQuery(`SELECT .* FROM "milestones"`).
		WillReturnError(errors.New("connection refused"))

	rows, err := repo.ListByUser(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, rows)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodePersistence, appErr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMilestoneRepository_UpdateFieldsReportsRowsAffected(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewMilestoneRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "milestones" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := repo.UpdateFields(context.Background(), 1, "missing-id", map[string]any{
		"title": "Renamed",
	})
	require.NoError(t, err)
	assert.Zero(t, affected)
	require.NoError(t, mock.ExpectationsWereMet())
}
