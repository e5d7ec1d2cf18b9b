package repository

import (
	"context"

	"waypoint/internal/cache"
	"waypoint/internal/models"
	"waypoint/internal/observability"
	"waypoint/internal/wire"

	"gorm.io/gorm"
)

// GuideRepository defines read operations for career guide reference data.
type GuideRepository interface {
	List(ctx context.Context) ([]wire.CareerGuideRow, error)
	GetByID(ctx context.Context, id string) (*wire.CareerGuideRow, error)
	Create(ctx context.Context, row *wire.CareerGuideRow) error
}

type guideRepository struct {
	db *gorm.DB
}

// NewGuideRepository returns a new GuideRepository implementation.
func NewGuideRepository(db *gorm.DB) GuideRepository {
	return &guideRepository{db: db}
}

// List returns all guides, cache-aside through Redis since reference data
// changes only on reseeding.
func (r *guideRepository) List(ctx context.Context) ([]wire.CareerGuideRow, error) {
	var rows []wire.CareerGuideRow

	err := cache.Aside(ctx, cache.GuideListKey, &rows, cache.GuideTTL, func() error {
		defer observability.TrackQuery("list", "career_guides")()
		if err := r.db.WithContext(ctx).Order("job_category ASC").Find(&rows).Error; err != nil {
			return models.NewPersistenceError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *guideRepository) GetByID(ctx context.Context, id string) (*wire.CareerGuideRow, error) {
	var row wire.CareerGuideRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("Career guide", id)
		}
		return nil, models.NewPersistenceError(err)
	}
	return &row, nil
}

func (r *guideRepository) Create(ctx context.Context, row *wire.CareerGuideRow) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return models.NewPersistenceError(err)
	}
	cache.InvalidateGuides(ctx)
	return nil
}
