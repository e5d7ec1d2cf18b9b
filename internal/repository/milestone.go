package repository

import (
	"context"

	"waypoint/internal/models"
	"waypoint/internal/observability"
	"waypoint/internal/wire"

	"gorm.io/gorm"
)

// MilestoneRepository defines persistence operations for milestones.
// Every operation is scoped to the owning user.
type MilestoneRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]wire.MilestoneRow, error)
	Create(ctx context.Context, row *wire.MilestoneRow) error
	CreateBatch(ctx context.Context, rows []wire.MilestoneRow) error
	UpdateFields(ctx context.Context, userID uint, id string, updates map[string]any) (int64, error)
	Delete(ctx context.Context, userID uint, id string) error
}

type milestoneRepository struct {
	db *gorm.DB
}

// NewMilestoneRepository returns a new MilestoneRepository implementation.
func NewMilestoneRepository(db *gorm.DB) MilestoneRepository {
	return &milestoneRepository{db: db}
}

func (r *milestoneRepository) ListByUser(ctx context.Context, userID uint) ([]wire.MilestoneRow, error) {
	defer observability.TrackQuery("list", "milestones")()

	var rows []wire.MilestoneRow
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_order ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return rows, nil
}

func (r *milestoneRepository) Create(ctx context.Context, row *wire.MilestoneRow) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}

func (r *milestoneRepository) CreateBatch(ctx context.Context, rows []wire.MilestoneRow) error {
	if len(rows) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}

func (r *milestoneRepository) UpdateFields(ctx context.Context, userID uint, id string, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		return r.exists(ctx, userID, id)
	}
	defer observability.TrackQuery("update", "milestones")()

	res := r.db.WithContext(ctx).
		Model(&wire.MilestoneRow{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return 0, models.NewPersistenceError(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *milestoneRepository) exists(ctx context.Context, userID uint, id string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&wire.MilestoneRow{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return 0, models.NewPersistenceError(err)
	}
	return count, nil
}

// Delete removes a milestone. Deleting a missing id is not an error.
func (r *milestoneRepository) Delete(ctx context.Context, userID uint, id string) error {
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&wire.MilestoneRow{}).Error; err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}
