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

// DailyGoalStore manages the authenticated user's daily goal records.
type DailyGoalStore struct {
	repo repository.DailyGoalRepository
	sess *session.Session

	mu     sync.Mutex
	items  []models.DailyGoal
	loaded bool
}

// NewDailyGoalStore returns a store scoped to the given session.
func NewDailyGoalStore(repo repository.DailyGoalRepository, sess *session.Session) *DailyGoalStore {
	return &DailyGoalStore{repo: repo, sess: sess}
}

// List returns the user's daily goal records, newest date first.
func (s *DailyGoalStore) List(ctx context.Context) ([]models.DailyGoal, error) {
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
	out := make([]models.DailyGoal, len(s.items))
	copy(out, s.items)
	return out, nil
}

// ForDate returns the record for a date. When no record exists a transient
// default (empty goals, neutral mood, zero hours) is returned without being
// persisted; the first SetForDate call creates the real record.
func (s *DailyGoalStore) ForDate(ctx context.Context, date string) (*models.DailyGoal, error) {
	if s.sess == nil {
		return nil, models.NewNotAuthenticatedError()
	}

	row, err := s.repo.GetByDate(ctx, s.sess.UserID, date)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return models.NewTransientDailyGoal(date), nil
	}
	return wire.DailyGoalToDomain(row)
}

// SetForDate upserts the record for a date: update semantics when a record
// exists, create semantics otherwise. Uniqueness per (user, date) rests on
// the database constraint, not on a client-side lookup.
func (s *DailyGoalStore) SetForDate(ctx context.Context, date string, u models.DailyGoalUpdate) (*models.DailyGoal, error) {
	if s.sess == nil {
		return nil, models.NewNotAuthenticatedError()
	}
	span, ctx := observability.StartStoreSpan(ctx, "daily_goals", "set_for_date")
	defer span.End()
	observability.RecordStoreOperation("daily_goals", "set_for_date")

	record := models.NewTransientDailyGoal(date)
	if u.Goals != nil {
		record.Goals = *u.Goals
	}
	if u.Reflection != nil {
		record.Reflection = *u.Reflection
	}
	if u.Mood != nil {
		record.Mood = *u.Mood
	}
	if u.StudyHours != nil {
		record.StudyHours = *u.StudyHours
	}

	row := wire.DailyGoalToRow(s.sess.UserID, record)
	if err := s.repo.UpsertByDate(ctx, row, wire.DailyGoalUpdates(u)); err != nil {
		span.SetError(err)
		observability.RecordStoreError("daily_goals", models.CodePersistence)
		return nil, err
	}

	s.mu.Lock()
	if err := s.refresh(ctx); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	stored, err := s.repo.GetByDate(ctx, s.sess.UserID, date)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, models.NewNotFoundError("Daily goal", date)
	}
	return wire.DailyGoalToDomain(stored)
}

func (s *DailyGoalStore) refresh(ctx context.Context) error {
	rows, err := s.repo.ListByUser(ctx, s.sess.UserID)
	if err != nil {
		return err
	}
	items := make([]models.DailyGoal, 0, len(rows))
	for i := range rows {
		g, err := wire.DailyGoalToDomain(&rows[i])
		if err != nil {
			return err
		}
		items = append(items, *g)
	}
	s.items = items
	s.loaded = true
	return nil
}
