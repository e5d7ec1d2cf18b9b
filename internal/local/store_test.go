package local

import (
	"context"
	"testing"
	"time"

	"waypoint/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStore() *Store {
	return NewStore(NewMemoryKV())
}

func TestStore_SeedsOnFirstAccess(t *testing.T) {
	s := newLocalStore()
	ctx := context.Background()

	profile, err := s.Profile(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, profile.Name)
	assert.Equal(t, models.RoleStudent, profile.Role)

	milestones, err := s.Milestones(ctx)
	require.NoError(t, err)
	assert.Len(t, milestones, 2)

	portfolio, err := s.PortfolioItems(ctx)
	require.NoError(t, err)
	assert.Len(t, portfolio, 1)

	goals, err := s.DailyGoals(ctx)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestStore_UpdateProfileAppliesOnlyGivenFields(t *testing.T) {
	s := newLocalStore()
	ctx := context.Background()

	before, err := s.Profile(ctx)
	require.NoError(t, err)

	school := "Night School"
	updated, err := s.UpdateProfile(ctx, models.ProfileUpdate{School: &school})
	require.NoError(t, err)
	assert.Equal(t, "Night School", updated.School)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Skills, updated.Skills)
}

func TestStore_MilestoneLifecycle(t *testing.T) {
	s := newLocalStore()
	ctx := context.Background()

	created, err := s.CreateMilestone(ctx, models.Milestone{
		Title:    "TOEIC",
		Category: models.CategoryCertificate,
		Order:    10,
		Tasks: []models.Task{
			{ID: "t1", Title: "Vocabulary"},
			{ID: "t2", Title: "Practice test"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusNotStarted, created.Status)

	tasks := created.Tasks
	tasks[0].Completed = true
	updated, err := s.UpdateMilestone(ctx, created.ID, models.MilestoneUpdate{Tasks: &tasks})
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Progress)
	assert.Equal(t, models.StatusInProgress, updated.Status)

	require.NoError(t, s.DeleteMilestone(ctx, created.ID))
	require.NoError(t, s.DeleteMilestone(ctx, created.ID))

	items, err := s.Milestones(ctx)
	require.NoError(t, err)
	for _, m := range items {
		assert.NotEqual(t, created.ID, m.ID)
	}
}

func TestStore_UpdateMissingMilestoneIsNotFound(t *testing.T) {
	s := newLocalStore()

	title := "x"
	_, err := s.UpdateMilestone(context.Background(), "missing", models.MilestoneUpdate{Title: &title})
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestStore_ApplyTemplateSequentialRanges(t *testing.T) {
	s := newLocalStore()
	ctx := context.Background()

	steps := []models.RoadmapStep{
		{Title: "Basics", Category: models.CategoryStudy, DurationDays: 30},
		{Title: "Project", Category: models.CategoryProject, DurationDays: 15},
	}
	created, err := s.ApplyTemplate(ctx, steps, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "2024-06-30", created[0].EndDate)
	assert.Equal(t, "2024-07-01", created[1].StartDate)
}

func TestStore_SetDailyGoalForDateUpserts(t *testing.T) {
	s := newLocalStore()
	ctx := context.Background()

	transient, err := s.DailyGoalForDate(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, transient.ID)
	assert.Equal(t, models.DefaultMood, transient.Mood)

	hours := 2.0
	first, err := s.SetDailyGoalForDate(ctx, "2024-06-01", models.DailyGoalUpdate{StudyHours: &hours})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	reflection := "Good pace"
	second, err := s.SetDailyGoalForDate(ctx, "2024-06-01", models.DailyGoalUpdate{Reflection: &reflection})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2.0, second.StudyHours)
	assert.Equal(t, "Good pace", second.Reflection)

	goals, err := s.DailyGoals(ctx)
	require.NoError(t, err)
	assert.Len(t, goals, 1)
}

func TestStore_PortfolioDeleteIsIdempotent(t *testing.T) {
	s := newLocalStore()
	ctx := context.Background()

	require.NoError(t, s.DeletePortfolioItem(ctx, "nonexistent-id"))

	items, err := s.PortfolioItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestStore_ResetClearsOnlyOwnNamespace(t *testing.T) {
	kv := NewMemoryKV()
	s := NewStore(kv)
	ctx := context.Background()

	_, err := s.Profile(ctx)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "other-app:counter", []byte("7")))

	require.NoError(t, s.Reset(ctx))

	_, err = kv.Get(ctx, DefaultPrefix+keyMilestones)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	v, err := kv.Get(ctx, "other-app:counter")
	require.NoError(t, err)
	assert.Equal(t, []byte("7"), v)

	// Next access reseeds.
	milestones, err := s.Milestones(ctx)
	require.NoError(t, err)
	assert.Len(t, milestones, 2)
}
