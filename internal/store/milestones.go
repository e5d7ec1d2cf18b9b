// Package store implements the per-entity resource stores. Each store owns an
// in-memory cache of its collection and re-synchronizes it after every
// mutation, so a successful mutation is always visible to the next List call.
// Two store instances for the same entity do not observe each other's writes
// until each independently refreshes.
package store

import (
	"context"
	"sync"
	"time"

	"waypoint/internal/models"
	"waypoint/internal/observability"
	"waypoint/internal/repository"
	"waypoint/internal/session"
	"waypoint/internal/wire"
)

// MilestoneStore manages the authenticated user's milestone collection.
type MilestoneStore struct {
	repo repository.MilestoneRepository
	sess *session.Session

	mu     sync.Mutex
	items  []models.Milestone
	loaded bool
}

// NewMilestoneStore returns a store scoped to the given session.
func NewMilestoneStore(repo repository.MilestoneRepository, sess *session.Session) *MilestoneStore {
	return &MilestoneStore{repo: repo, sess: sess}
}

// List returns the user's milestones ordered by their manual ranking.
func (s *MilestoneStore) List(ctx context.Context) ([]models.Milestone, error) {
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
	return s.snapshot(), nil
}

// Create persists a milestone for the current user. A missing ID gets a fresh
// random identifier; progress and status are derived from tasks when present.
func (s *MilestoneStore) Create(ctx context.Context, m models.Milestone) (*models.Milestone, error) {
	if s.sess == nil {
		return nil, models.NewNotAuthenticatedError()
	}
	span, ctx := observability.StartStoreSpan(ctx, "milestones", "create")
	defer span.End()
	observability.RecordStoreOperation("milestones", "create")

	if m.Status == "" {
		m.Status = models.StatusNotStarted
	}
	m.Recalculate()

	row := wire.MilestoneToRow(s.sess.UserID, &m)
	if err := s.repo.Create(ctx, row); err != nil {
		span.SetError(err)
		observability.RecordStoreError("milestones", models.CodePersistence)
		return nil, err
	}
	m.ID = row.ID

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	return &m, nil
}

// Update applies only the supplied fields. When Tasks is part of the payload,
// progress and status are recomputed from it before writing.
func (s *MilestoneStore) Update(ctx context.Context, id string, u models.MilestoneUpdate) (*models.Milestone, error) {
	if s.sess == nil {
		return nil, models.NewNotAuthenticatedError()
	}
	span, ctx := observability.StartStoreSpan(ctx, "milestones", "update")
	defer span.End()
	observability.RecordStoreOperation("milestones", "update")

	if u.Tasks != nil {
		if progress, status, ok := models.DeriveMilestoneProgress(*u.Tasks); ok {
			u.Progress = &progress
			u.Status = &status
		}
	}

	affected, err := s.repo.UpdateFields(ctx, s.sess.UserID, id, wire.MilestoneUpdates(u))
	if err != nil {
		span.SetError(err)
		observability.RecordStoreError("milestones", models.CodePersistence)
		return nil, err
	}
	if affected == 0 {
		err := models.NewNotFoundError("Milestone", id)
		span.SetError(err)
		observability.RecordStoreError("milestones", models.CodeNotFound)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			m := s.items[i]
			return &m, nil
		}
	}
	return nil, models.NewNotFoundError("Milestone", id)
}

// Delete removes a milestone. Deleting a non-existent id is not an error.
func (s *MilestoneStore) Delete(ctx context.Context, id string) error {
	if s.sess == nil {
		return models.NewNotAuthenticatedError()
	}
	span, ctx := observability.StartStoreSpan(ctx, "milestones", "delete")
	defer span.End()
	observability.RecordStoreOperation("milestones", "delete")

	if err := s.repo.Delete(ctx, s.sess.UserID, id); err != nil {
		span.SetError(err)
		observability.RecordStoreError("milestones", models.CodePersistence)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh(ctx)
}

// ApplyTemplate bulk-generates milestones from a guide's roadmap template.
// Steps get sequential date ranges starting at start, one range per step.
func (s *MilestoneStore) ApplyTemplate(ctx context.Context, steps []models.RoadmapStep, start time.Time) ([]models.Milestone, error) {
	if s.sess == nil {
		return nil, models.NewNotAuthenticatedError()
	}
	span, ctx := observability.StartStoreSpan(ctx, "milestones", "apply_template")
	defer span.End()
	observability.RecordStoreOperation("milestones", "apply_template")

	cursor := start
	created := make([]models.Milestone, 0, len(steps))
	rows := make([]wire.MilestoneRow, 0, len(steps))
	for i, step := range steps {
		duration := step.DurationDays
		if duration < 1 {
			duration = 1
		}
		end := cursor.AddDate(0, 0, duration-1)

		m := models.Milestone{
			Title:       step.Title,
			Description: step.Description,
			Category:    step.Category,
			StartDate:   cursor.Format("2006-01-02"),
			EndDate:     end.Format("2006-01-02"),
			Status:      models.StatusNotStarted,
			Tasks:       []models.Task{},
			Order:       i,
		}
		row := wire.MilestoneToRow(s.sess.UserID, &m)
		m.ID = row.ID
		rows = append(rows, *row)
		created = append(created, m)

		cursor = end.AddDate(0, 0, 1)
	}

	if err := s.repo.CreateBatch(ctx, rows); err != nil {
		span.SetError(err)
		observability.RecordStoreError("milestones", models.CodePersistence)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

// refresh reloads the cached collection. Callers hold the lock.
func (s *MilestoneStore) refresh(ctx context.Context) error {
	rows, err := s.repo.ListByUser(ctx, s.sess.UserID)
	if err != nil {
		return err
	}
	items := make([]models.Milestone, 0, len(rows))
	for i := range rows {
		m, err := wire.MilestoneToDomain(&rows[i])
		if err != nil {
			return err
		}
		items = append(items, *m)
	}
	s.items = items
	s.loaded = true
	return nil
}

func (s *MilestoneStore) snapshot() []models.Milestone {
	out := make([]models.Milestone, len(s.items))
	copy(out, s.items)
	return out
}
