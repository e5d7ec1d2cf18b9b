package store

import (
	"context"
	"testing"
	"time"

	"waypoint/internal/models"
	"waypoint/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMilestoneStore(t *testing.T, userID uint) *MilestoneStore {
	t.Helper()
	db := newTestDB(t)
	return NewMilestoneStore(repository.NewMilestoneRepository(db), studentSession(userID))
}

func TestMilestoneStore_RequiresSession(t *testing.T) {
	db := newTestDB(t)
	s := NewMilestoneStore(repository.NewMilestoneRepository(db), nil)

	_, err := s.List(context.Background())
	assert.True(t, models.IsCode(err, models.CodeNotAuthenticated))

	_, err = s.Create(context.Background(), models.Milestone{Title: "x"})
	assert.True(t, models.IsCode(err, models.CodeNotAuthenticated))
}

func TestMilestoneStore_CreateVisibleInNextList(t *testing.T) {
	s := newMilestoneStore(t, 1)
	ctx := context.Background()

	created, err := s.Create(ctx, models.Milestone{
		Title:    "Learn SQL",
		Category: models.CategoryStudy,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, models.StatusNotStarted, items[0].Status)
}

func TestMilestoneStore_UpdateTasksDerivesProgress(t *testing.T) {
	s := newMilestoneStore(t, 1)
	ctx := context.Background()

	created, err := s.Create(ctx, models.Milestone{
		Title:    "Certification",
		Category: models.CategoryCertificate,
		Tasks: []models.Task{
			{ID: "t1", Title: "Register"},
			{ID: "t2", Title: "Study"},
			{ID: "t3", Title: "Mock exam"},
			{ID: "t4", Title: "Sit exam"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Progress)
	assert.Equal(t, models.StatusNotStarted, created.Status)

	tasks := created.Tasks
	tasks[0].Completed = true
	tasks[1].Completed = true
	updated, err := s.Update(ctx, created.ID, models.MilestoneUpdate{Tasks: &tasks})
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Progress)
	assert.Equal(t, models.StatusInProgress, updated.Status)

	tasks[2].Completed = true
	tasks[3].Completed = true
	updated, err = s.Update(ctx, created.ID, models.MilestoneUpdate{Tasks: &tasks})
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)
	assert.Equal(t, models.StatusCompleted, updated.Status)
}

func TestMilestoneStore_PartialUpdateLeavesOtherFields(t *testing.T) {
	s := newMilestoneStore(t, 1)
	ctx := context.Background()

	created, err := s.Create(ctx, models.Milestone{
		Title:       "Side project",
		Description: "Build a CLI",
		Category:    models.CategoryProject,
		StartDate:   "2024-01-01",
		EndDate:     "2024-03-01",
	})
	require.NoError(t, err)

	title := "Side project v2"
	updated, err := s.Update(ctx, created.ID, models.MilestoneUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Side project v2", updated.Title)
	assert.Equal(t, "Build a CLI", updated.Description)
	assert.Equal(t, "2024-01-01", updated.StartDate)
}

func TestMilestoneStore_UpdateMissingIsNotFound(t *testing.T) {
	s := newMilestoneStore(t, 1)

	title := "x"
	_, err := s.Update(context.Background(), "nonexistent-id", models.MilestoneUpdate{Title: &title})
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestMilestoneStore_UpdateOtherUsersRecordIsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewMilestoneRepository(db)
	owner := NewMilestoneStore(repo, studentSession(1))
	intruder := NewMilestoneStore(repo, studentSession(2))
	ctx := context.Background()

	created, err := owner.Create(ctx, models.Milestone{Title: "Mine", Category: models.CategoryStudy})
	require.NoError(t, err)

	title := "stolen"
	_, err = intruder.Update(ctx, created.ID, models.MilestoneUpdate{Title: &title})
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestMilestoneStore_DeleteIsIdempotent(t *testing.T) {
	s := newMilestoneStore(t, 1)
	ctx := context.Background()

	created, err := s.Create(ctx, models.Milestone{Title: "To remove", Category: models.CategoryActivity})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID))
	require.NoError(t, s.Delete(ctx, created.ID))

	items, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMilestoneStore_ListOrderedByRank(t *testing.T) {
	s := newMilestoneStore(t, 1)
	ctx := context.Background()

	_, err := s.Create(ctx, models.Milestone{Title: "Second", Category: models.CategoryStudy, Order: 2})
	require.NoError(t, err)
	_, err = s.Create(ctx, models.Milestone{Title: "First", Category: models.CategoryStudy, Order: 1})
	require.NoError(t, err)

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Title)
	assert.Equal(t, "Second", items[1].Title)
}

func TestMilestoneStore_ApplyTemplateSequentialRanges(t *testing.T) {
	s := newMilestoneStore(t, 1)
	ctx := context.Background()

	steps := []models.RoadmapStep{
		{Title: "Basics", Category: models.CategoryStudy, DurationDays: 30},
		{Title: "Project", Category: models.CategoryProject, DurationDays: 15},
	}
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	created, err := s.ApplyTemplate(ctx, steps, start)
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Equal(t, "2024-06-01", created[0].StartDate)
	assert.Equal(t, "2024-06-30", created[0].EndDate)
	assert.Equal(t, "2024-07-01", created[1].StartDate)
	assert.Equal(t, "2024-07-15", created[1].EndDate)

	items, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
