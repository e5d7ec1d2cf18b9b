package repository

import (
	"context"

	"waypoint/internal/models"
	"waypoint/internal/observability"
	"waypoint/internal/wire"

	"gorm.io/gorm"
)

// PortfolioRepository defines persistence operations for portfolio items.
type PortfolioRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]wire.PortfolioItemRow, error)
	Create(ctx context.Context, row *wire.PortfolioItemRow) error
	UpdateFields(ctx context.Context, userID uint, id string, updates map[string]any) (int64, error)
	Delete(ctx context.Context, userID uint, id string) error
}

type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository returns a new PortfolioRepository implementation.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) ListByUser(ctx context.Context, userID uint) ([]wire.PortfolioItemRow, error) {
	defer observability.TrackQuery("list", "portfolio_items")()

	var rows []wire.PortfolioItemRow
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return rows, nil
}

func (r *portfolioRepository) Create(ctx context.Context, row *wire.PortfolioItemRow) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}

func (r *portfolioRepository) UpdateFields(ctx context.Context, userID uint, id string, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&wire.PortfolioItemRow{}).
			Where("id = ? AND user_id = ?", id, userID).
			Count(&count).Error; err != nil {
			return 0, models.NewPersistenceError(err)
		}
		return count, nil
	}
	defer observability.TrackQuery("update", "portfolio_items")()

	res := r.db.WithContext(ctx).
		Model(&wire.PortfolioItemRow{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return 0, models.NewPersistenceError(res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes a portfolio item. Deleting a missing id is not an error.
func (r *portfolioRepository) Delete(ctx context.Context, userID uint, id string) error {
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&wire.PortfolioItemRow{}).Error; err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}
