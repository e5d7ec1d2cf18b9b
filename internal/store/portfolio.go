package store

import (
	"context"
	"sync"

	"waypoint/internal/models"
	"waypoint/internal/observability"
	"waypoint/internal/repository"
	"waypoint/internal/session"
	"waypoint/internal/wire"
)

// PortfolioStore manages the authenticated user's portfolio collection.
// Sorting beyond insertion order is a consumer concern.
type PortfolioStore struct {
	repo repository.PortfolioRepository
	sess *session.Session

	mu     sync.Mutex
	items  []models.PortfolioItem
	loaded bool
}

// NewPortfolioStore returns a store scoped to the given session.
func NewPortfolioStore(repo repository.PortfolioRepository, sess *session.Session) *PortfolioStore {
	return &PortfolioStore{repo: repo, sess: sess}
}

// List returns the user's portfolio items.
func (s *PortfolioStore) List(ctx context.Context) ([]models.PortfolioItem, error) {
	if s.sess == nil {
		return nil, models.NewNotAuthenticatedError()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		if err := s.refresh(ctx); err != nil {
			return nil, err
		}
	}
	out := make([]models.PortfolioItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Create persists a portfolio item for the current user.
func (s *PortfolioStore) Create(ctx context.Context, item models.PortfolioItem) (*models.PortfolioItem, error) {
	if s.sess == nil {
		return nil, models.NewNotAuthenticatedError()
	}
	span, ctx := observability.StartStoreSpan(ctx, "portfolio", "create")
	defer span.End()
	observability.RecordStoreOperation("portfolio", "create")

	row := wire.PortfolioItemToRow(s.sess.UserID, &item)
	if err := s.repo.Create(ctx, row); err != nil {
		span.SetError(err)
		observability.RecordStoreError("portfolio", models.CodePersistence)
		return nil, err
	}
	item.ID = row.ID

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies only the supplied fields.
func (s *PortfolioStore) Update(ctx context.Context, id string, u models.PortfolioUpdate) (*models.PortfolioItem, error) {
	if s.sess == nil {
		return nil, models.NewNotAuthenticatedError()
	}
	span, ctx := observability.StartStoreSpan(ctx, "portfolio", "update")
	defer span.End()
	observability.RecordStoreOperation("portfolio", "update")

	affected, err := s.repo.UpdateFields(ctx, s.sess.UserID, id, wire.PortfolioUpdates(u))
	if err != nil {
		span.SetError(err)
		observability.RecordStoreError("portfolio", models.CodePersistence)
		return nil, err
	}
	if affected == 0 {
		err := models.NewNotFoundError("Portfolio item", id)
		span.SetError(err)
		observability.RecordStoreError("portfolio", models.CodeNotFound)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, models.NewNotFoundError("Portfolio item", id)
}

// Delete removes a portfolio item. Deleting a non-existent id is not an error.
func (s *PortfolioStore) Delete(ctx context.Context, id string) error {
	if s.sess == nil {
		return models.NewNotAuthenticatedError()
	}
	span, ctx := observability.StartStoreSpan(ctx, "portfolio", "delete")
	defer span.End()
	observability.RecordStoreOperation("portfolio", "delete")

	if err := s.repo.Delete(ctx, s.sess.UserID, id); err != nil {
		span.SetError(err)
		observability.RecordStoreError("portfolio", models.CodePersistence)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh(ctx)
}

func (s *PortfolioStore) refresh(ctx context.Context) error {
	rows, err := s.repo.ListByUser(ctx, s.sess.UserID)
	if err != nil {
		return err
	}
	items := make([]models.PortfolioItem, 0, len(rows))
	for i := range rows {
		item, err := wire.PortfolioItemToDomain(&rows[i])
		if err != nil {
			return err
		}
		items = append(items, *item)
	}
	s.items = items
	s.loaded = true
	return nil
}
