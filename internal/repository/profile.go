package repository

import (
	"context"
	"errors"

	"waypoint/internal/models"
	"waypoint/internal/observability"
	"waypoint/internal/wire"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for user profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*wire.ProfileRow, error)
	Create(ctx context.Context, row *wire.ProfileRow) error
	UpdateFields(ctx context.Context, userID uint, updates map[string]any) (int64, error)
	ListAll(ctx context.Context) ([]wire.ProfileRow, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*wire.ProfileRow, error) {
	defer observability.TrackQuery("get", "profiles")()

	var row wire.ProfileRow
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", userID)
		}
		return nil, models.NewPersistenceError(err)
	}
	return &row, nil
}

func (r *profileRepository) Create(ctx context.Context, row *wire.ProfileRow) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Profile already exists")
		}
		return models.NewPersistenceError(err)
	}
	return nil
}

func (r *profileRepository) UpdateFields(ctx context.Context, userID uint, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		return 1, nil
	}
	defer observability.TrackQuery("update", "profiles")()

	res := r.db.WithContext(ctx).
		Model(&wire.ProfileRow{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return 0, models.NewPersistenceError(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *profileRepository) ListAll(ctx context.Context) ([]wire.ProfileRow, error) {
	defer observability.TrackQuery("list", "profiles")()

	var rows []wire.ProfileRow
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return rows, nil
}
