package local

import (
	"context"
	"encoding/json"
	"testing"

	"waypoint/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_ExportThenImportRestoresState(t *testing.T) {
	src := newLocalStore()
	ctx := context.Background()

	name := "Exported Student"
	_, err := src.UpdateProfile(ctx, models.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	_, err = src.CreateMilestone(ctx, models.Milestone{Title: "Extra", Category: models.CategoryActivity})
	require.NoError(t, err)
	hours := 1.5
	_, err = src.SetDailyGoalForDate(ctx, "2024-06-01", models.DailyGoalUpdate{StudyHours: &hours})
	require.NoError(t, err)

	doc, err := src.Export(ctx)
	require.NoError(t, err)

	dst := newLocalStore()
	require.NoError(t, dst.Import(ctx, doc))

	srcProfile, err := src.Profile(ctx)
	require.NoError(t, err)
	dstProfile, err := dst.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcProfile, dstProfile)

	srcMilestones, err := src.Milestones(ctx)
	require.NoError(t, err)
	dstMilestones, err := dst.Milestones(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcMilestones, dstMilestones)

	srcGoals, err := src.DailyGoals(ctx)
	require.NoError(t, err)
	dstGoals, err := dst.DailyGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcGoals, dstGoals)

	srcPortfolio, err := src.PortfolioItems(ctx)
	require.NoError(t, err)
	dstPortfolio, err := dst.PortfolioItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcPortfolio, dstPortfolio)
}

func TestSnapshot_ExportDocumentShape(t *testing.T) {
	s := newLocalStore()

	doc, err := s.Export(context.Background())
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc, &top))
	for _, key := range []string{"version", "exportedAt", "profile", "milestones", "dailyGoals", "portfolio"} {
		assert.Contains(t, top, key)
	}

	var version int
	require.NoError(t, json.Unmarshal(top["version"], &version))
	assert.Equal(t, SnapshotVersion, version)
}

func TestSnapshot_ImportAppliesOnlyPresentKeys(t *testing.T) {
	s := newLocalStore()
	ctx := context.Background()

	before, err := s.PortfolioItems(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	// No portfolio key: profile, milestones, and dailyGoals are overwritten
	// while the existing portfolio collection stays in place.
	doc := []byte(`{
		"version": 1,
		"profile": {"userId": 1, "role": "student", "name": "Imported"},
		"milestones": [],
		"dailyGoals": []
	}`)
	require.NoError(t, s.Import(ctx, doc))

	profile, err := s.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Imported", profile.Name)

	milestones, err := s.Milestones(ctx)
	require.NoError(t, err)
	assert.Empty(t, milestones)

	after, err := s.PortfolioItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSnapshot_ImportRejectsMalformedDocument(t *testing.T) {
	s := newLocalStore()
	ctx := context.Background()

	before, err := s.Milestones(ctx)
	require.NoError(t, err)

	err = s.Import(ctx, []byte(`{"milestones": [`))
	assert.True(t, models.IsCode(err, models.CodeDataFormat))

	after, err := s.Milestones(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSnapshot_ImportRejectsUnknownVersion(t *testing.T) {
	s := newLocalStore()

	err := s.Import(context.Background(), []byte(`{"version": 2, "milestones": []}`))
	assert.True(t, models.IsCode(err, models.CodeDataFormat))
}
