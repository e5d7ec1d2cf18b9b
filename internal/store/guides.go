package store

import (
	"context"
	"log/slog"

	"waypoint/internal/middleware"
	"waypoint/internal/models"
	"waypoint/internal/repository"
	"waypoint/internal/wire"
)

// GuideStore exposes the global career guide reference data. Guides are not
// user-owned, so no session is required to read them.
type GuideStore struct {
	repo repository.GuideRepository
}

// NewGuideStore returns a guide store.
func NewGuideStore(repo repository.GuideRepository) *GuideStore {
	return &GuideStore{repo: repo}
}

// List returns all guides. A read failure is logged and surfaces as an empty
// collection: the template feature degrades without blocking the caller.
func (g *GuideStore) List(ctx context.Context) []models.CareerGuide {
	rows, err := g.repo.List(ctx)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "career guide fetch failed, disabling templates",
			slog.String("error", err.Error()))
		return []models.CareerGuide{}
	}

	guides := make([]models.CareerGuide, 0, len(rows))
	for i := range rows {
		guide, err := wire.CareerGuideToDomain(&rows[i])
		if err != nil {
			middleware.Logger.WarnContext(ctx, "skipping malformed career guide row",
				slog.String("guide_id", rows[i].ID),
				slog.String("error", err.Error()))
			continue
		}
		guides = append(guides, *guide)
	}
	return guides
}

// Get returns a single guide by id.
func (g *GuideStore) Get(ctx context.Context, id string) (*models.CareerGuide, error) {
	row, err := g.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return wire.CareerGuideToDomain(row)
}
