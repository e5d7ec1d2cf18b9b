// Package local implements the offline variant of the resource stores. It
// mirrors the external contract of the store package but persists each entity
// collection as one JSON value in a key/value backend, so every mutation is a
// read-modify-write on the whole collection. Concurrent processes are not
// coordinated; last write wins at collection granularity.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"waypoint/internal/models"

	"github.com/google/uuid"
)

// DefaultPrefix namespaces every key this store writes, so a reset never
// touches unrelated data sharing the same backend.
const DefaultPrefix = "waypoint:"

const (
	keyProfile    = "profile"
	keyMilestones = "milestones"
	keyDailyGoals = "daily_goals"
	keyPortfolio  = "portfolio"
)

// Store is the offline data layer. All operations act on behalf of the single
// local user, so no session is required.
type Store struct {
	kv     KV
	prefix string
	mu     sync.Mutex
}

// NewStore returns an offline store over kv under the default namespace.
func NewStore(kv KV) *Store {
	return NewStoreWithPrefix(kv, DefaultPrefix)
}

// NewStoreWithPrefix returns an offline store under a custom namespace.
func NewStoreWithPrefix(kv KV, prefix string) *Store {
	return &Store{kv: kv, prefix: prefix}
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

// ensureSeeded writes the starter dataset on first access. Callers hold the
// lock. The profile key doubles as the seeded marker.
func (s *Store) ensureSeeded(ctx context.Context) error {
	_, err := s.kv.Get(ctx, s.key(keyProfile))
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return err
	}

	if err := s.save(ctx, keyProfile, seedProfile()); err != nil {
		return err
	}
	if err := s.save(ctx, keyMilestones, seedMilestones()); err != nil {
		return err
	}
	if err := s.save(ctx, keyDailyGoals, []models.DailyGoal{}); err != nil {
		return err
	}
	return s.save(ctx, keyPortfolio, seedPortfolio())
}

// load decodes a collection key into dest, leaving dest untouched when the
// key does not exist. Malformed stored JSON fails with a data format error
// naming the key.
func (s *Store) load(ctx context.Context, name string, dest any) error {
	raw, err := s.kv.Get(ctx, s.key(name))
	if errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return models.NewDataFormatError(name, err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return models.NewPersistenceError(err)
	}
	return s.kv.Set(ctx, s.key(name), raw)
}

// Profile returns the local user's profile, seeding on first access.
func (s *Store) Profile(ctx context.Context) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	var p models.UserProfile
	if err := s.load(ctx, keyProfile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile applies only the supplied fields and returns the result.
func (s *Store) UpdateProfile(ctx context.Context, u models.ProfileUpdate) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	var p models.UserProfile
	if err := s.load(ctx, keyProfile, &p); err != nil {
		return nil, err
	}
	applyProfileUpdate(&p, u)
	if err := s.save(ctx, keyProfile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Milestones returns the milestone collection ordered by manual ranking.
func (s *Store) Milestones(ctx context.Context) ([]models.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadMilestones(ctx)
}

func (s *Store) loadMilestones(ctx context.Context) ([]models.Milestone, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	items := []models.Milestone{}
	if err := s.load(ctx, keyMilestones, &items); err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items, nil
}

// CreateMilestone appends a milestone to the collection. A missing ID gets a
// fresh random identifier; progress and status are derived from tasks.
func (s *Store) CreateMilestone(ctx context.Context, m models.Milestone) (*models.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadMilestones(ctx)
	if err != nil {
		return nil, err
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = models.StatusNotStarted
	}
	if m.Tasks == nil {
		m.Tasks = []models.Task{}
	}
	m.Recalculate()

	items = append(items, m)
	if err := s.save(ctx, keyMilestones, items); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMilestone applies only the supplied fields. When Tasks is part of the
// payload, progress and status are recomputed before writing.
func (s *Store) UpdateMilestone(ctx context.Context, id string, u models.MilestoneUpdate) (*models.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadMilestones(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		applyMilestoneUpdate(&items[i], u)
		if err := s.save(ctx, keyMilestones, items); err != nil {
			return nil, err
		}
		m := items[i]
		return &m, nil
	}
	return nil, models.NewNotFoundError("Milestone", id)
}

// DeleteMilestone removes a milestone. A non-existent id is not an error.
func (s *Store) DeleteMilestone(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadMilestones(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, m := range items {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return s.save(ctx, keyMilestones, kept)
}

// ApplyTemplate bulk-generates milestones from a guide's roadmap template,
// assigning sequential date ranges starting at start.
func (s *Store) ApplyTemplate(ctx context.Context, steps []models.RoadmapStep, start time.Time) ([]models.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadMilestones(ctx)
	if err != nil {
		return nil, err
	}

	cursor := start
	created := make([]models.Milestone, 0, len(steps))
	for i, step := range steps {
		duration := step.DurationDays
		if duration < 1 {
			duration = 1
		}
		end := cursor.AddDate(0, 0, duration-1)

		created = append(created, models.Milestone{
			ID:          uuid.NewString(),
			Title:       step.Title,
			Description: step.Description,
			Category:    step.Category,
			StartDate:   cursor.Format("2006-01-02"),
			EndDate:     end.Format("2006-01-02"),
			Status:      models.StatusNotStarted,
			Tasks:       []models.Task{},
			Order:       i,
		})
		cursor = end.AddDate(0, 0, 1)
	}

	items = append(items, created...)
	if err := s.save(ctx, keyMilestones, items); err != nil {
		return nil, err
	}
	return created, nil
}

// DailyGoals returns all recorded daily goals.
func (s *Store) DailyGoals(ctx context.Context) ([]models.DailyGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadDailyGoals(ctx)
}

func (s *Store) loadDailyGoals(ctx context.Context) ([]models.DailyGoal, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	goals := []models.DailyGoal{}
	if err := s.load(ctx, keyDailyGoals, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// DailyGoalForDate returns the record for date, or a transient default that
// is not persisted until the first write.
func (s *Store) DailyGoalForDate(ctx context.Context, date string) (*models.DailyGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.loadDailyGoals(ctx)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		if goals[i].Date == date {
			g := goals[i]
			return &g, nil
		}
	}
	return models.NewTransientDailyGoal(date), nil
}

// SetDailyGoalForDate upserts the single record for date: an existing record
// merges the supplied fields, otherwise one is created with date fixed.
func (s *Store) SetDailyGoalForDate(ctx context.Context, date string, u models.DailyGoalUpdate) (*models.DailyGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.loadDailyGoals(ctx)
	if err != nil {
		return nil, err
	}

	for i := range goals {
		if goals[i].Date != date {
			continue
		}
		applyDailyGoalUpdate(&goals[i], u)
		if err := s.save(ctx, keyDailyGoals, goals); err != nil {
			return nil, err
		}
		g := goals[i]
		return &g, nil
	}

	g := models.NewTransientDailyGoal(date)
	g.ID = uuid.NewString()
	applyDailyGoalUpdate(g, u)
	goals = append(goals, *g)
	if err := s.save(ctx, keyDailyGoals, goals); err != nil {
		return nil, err
	}
	return g, nil
}

// PortfolioItems returns the portfolio collection.
func (s *Store) PortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPortfolio(ctx)
}

func (s *Store) loadPortfolio(ctx context.Context) ([]models.PortfolioItem, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	items := []models.PortfolioItem{}
	if err := s.load(ctx, keyPortfolio, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreatePortfolioItem appends an item to the portfolio collection.
func (s *Store) CreatePortfolioItem(ctx context.Context, item models.PortfolioItem) (*models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadPortfolio(ctx)
	if err != nil {
		return nil, err
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if item.Images == nil {
		item.Images = []string{}
	}

	items = append(items, item)
	if err := s.save(ctx, keyPortfolio, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdatePortfolioItem applies only the supplied fields.
func (s *Store) UpdatePortfolioItem(ctx context.Context, id string, u models.PortfolioUpdate) (*models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadPortfolio(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		applyPortfolioUpdate(&items[i], u)
		if err := s.save(ctx, keyPortfolio, items); err != nil {
			return nil, err
		}
		item := items[i]
		return &item, nil
	}
	return nil, models.NewNotFoundError("Portfolio item", id)
}

// DeletePortfolioItem removes an item. A non-existent id is not an error.
func (s *Store) DeletePortfolioItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadPortfolio(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.save(ctx, keyPortfolio, kept)
}

// Reset deletes every key under this store's namespace. The next access
// reseeds the starter dataset.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.kv.Keys(ctx, s.prefix)
	if err != nil {
		return err
	}
	return s.kv.Delete(ctx, keys...)
}

func applyProfileUpdate(p *models.UserProfile, u models.ProfileUpdate) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.School != nil {
		p.School = *u.School
	}
	if u.Department != nil {
		p.Department = *u.Department
	}
	if u.Grade != nil {
		p.Grade = *u.Grade
	}
	if u.TargetJob != nil {
		p.TargetJob = *u.TargetJob
	}
	if u.TargetCompany != nil {
		p.TargetCompany = *u.TargetCompany
	}
	if u.Skills != nil {
		p.Skills = *u.Skills
	}
	if u.Introduction != nil {
		p.Introduction = *u.Introduction
	}
	if u.ProfileImage != nil {
		p.ProfileImage = *u.ProfileImage
	}
}

func applyMilestoneUpdate(m *models.Milestone, u models.MilestoneUpdate) {
	if u.Title != nil {
		m.Title = *u.Title
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	if u.Category != nil {
		m.Category = *u.Category
	}
	if u.StartDate != nil {
		m.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		m.EndDate = *u.EndDate
	}
	if u.Status != nil {
		m.Status = *u.Status
	}
	if u.Progress != nil {
		m.Progress = *u.Progress
	}
	if u.Order != nil {
		m.Order = *u.Order
	}
	if u.Tasks != nil {
		m.Tasks = *u.Tasks
		m.Recalculate()
	}
}

func applyDailyGoalUpdate(g *models.DailyGoal, u models.DailyGoalUpdate) {
	if u.Goals != nil {
		g.Goals = *u.Goals
	}
	if u.Reflection != nil {
		g.Reflection = *u.Reflection
	}
	if u.Mood != nil {
		g.Mood = *u.Mood
	}
	if u.StudyHours != nil {
		g.StudyHours = *u.StudyHours
	}
}

func applyPortfolioUpdate(item *models.PortfolioItem, u models.PortfolioUpdate) {
	if u.Type != nil {
		item.Type = *u.Type
	}
	if u.Title != nil {
		item.Title = *u.Title
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
	if u.Date != nil {
		item.Date = *u.Date
	}
	if u.Tags != nil {
		item.Tags = *u.Tags
	}
	if u.Images != nil {
		item.Images = *u.Images
	}
	if u.Links != nil {
		item.Links = *u.Links
	}
	if u.Details != nil {
		item.Details = *u.Details
	}
}
