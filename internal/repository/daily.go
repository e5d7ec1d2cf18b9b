package repository

import (
	"context"
	"errors"

	"waypoint/internal/models"
	"waypoint/internal/observability"
	"waypoint/internal/wire"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyGoalRepository defines persistence operations for daily goals.
// The unique index on (user_id, date) is the correctness guarantee for
// upsert-by-date; the repository never does lookup-then-write.
type DailyGoalRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]wire.DailyGoalRow, error)
	GetByDate(ctx context.Context, userID uint, date string) (*wire.DailyGoalRow, error)
	UpsertByDate(ctx context.Context, row *wire.DailyGoalRow, updates map[string]any) error
}

type dailyGoalRepository struct {
	db *gorm.DB
}

// NewDailyGoalRepository returns a new DailyGoalRepository implementation.
func NewDailyGoalRepository(db *gorm.DB) DailyGoalRepository {
	return &dailyGoalRepository{db: db}
}

func (r *dailyGoalRepository) ListByUser(ctx context.Context, userID uint) ([]wire.DailyGoalRow, error) {
	defer observability.TrackQuery("list", "daily_goals")()

	var rows []wire.DailyGoalRow
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error; err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return rows, nil
}

func (r *dailyGoalRepository) GetByDate(ctx context.Context, userID uint, date string) (*wire.DailyGoalRow, error) {
	var row wire.DailyGoalRow
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewPersistenceError(err)
	}
	return &row, nil
}

// UpsertByDate inserts the row, or on a (user_id, date) conflict applies only
// the sparse update columns to the existing record. This keeps concurrent
// setForDate calls for the same date from ever producing duplicates.
func (r *dailyGoalRepository) UpsertByDate(ctx context.Context, row *wire.DailyGoalRow, updates map[string]any) error {
	defer observability.TrackQuery("upsert", "daily_goals")()

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}
	if len(updates) > 0 {
		onConflict.DoNothing = false
		onConflict.DoUpdates = clause.Assignments(updates)
	}

	if err := r.db.WithContext(ctx).Clauses(onConflict).Create(row).Error; err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}
