package repository

import (
	"context"

	"waypoint/internal/models"
	"waypoint/internal/observability"
	"waypoint/internal/wire"

	"gorm.io/gorm"
)

// CounselingRepository defines persistence operations for counseling logs.
// Logs are append-only: there is no update or delete.
type CounselingRepository interface {
	ListByStudent(ctx context.Context, studentID uint) ([]wire.CounselingLogRow, error)
	Create(ctx context.Context, row *wire.CounselingLogRow) error
}

type counselingRepository struct {
	db *gorm.DB
}

// NewCounselingRepository returns a new CounselingRepository implementation.
func NewCounselingRepository(db *gorm.DB) CounselingRepository {
	return &counselingRepository{db: db}
}

func (r *counselingRepository) ListByStudent(ctx context.Context, studentID uint) ([]wire.CounselingLogRow, error) {
	defer observability.TrackQuery("list", "counseling_logs")()

	var rows []wire.CounselingLogRow
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return rows, nil
}

func (r *counselingRepository) Create(ctx context.Context, row *wire.CounselingLogRow) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}
