package local

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"waypoint/internal/models"
)

// SnapshotVersion is the current export document format version.
const SnapshotVersion = 1

// Snapshot is the transportable full-state export document.
type Snapshot struct {
	Version    int                    `json:"version"`
	ExportedAt time.Time              `json:"exportedAt"`
	Profile    *models.UserProfile    `json:"profile"`
	Milestones []models.Milestone     `json:"milestones"`
	DailyGoals []models.DailyGoal     `json:"dailyGoals"`
	Portfolio  []models.PortfolioItem `json:"portfolio"`
}

// snapshotDoc mirrors Snapshot with pointer fields so Import can distinguish
// a key that is absent from one that is present but empty.
type snapshotDoc struct {
	Version    *int                    `json:"version"`
	Profile    *models.UserProfile     `json:"profile"`
	Milestones *[]models.Milestone     `json:"milestones"`
	DailyGoals *[]models.DailyGoal     `json:"dailyGoals"`
	Portfolio  *[]models.PortfolioItem `json:"portfolio"`
}

// Export serializes all collections into one JSON document.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	snap := Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: time.Now().UTC(),
		Milestones: []models.Milestone{},
		DailyGoals: []models.DailyGoal{},
		Portfolio:  []models.PortfolioItem{},
	}

	var profile models.UserProfile
	if err := s.load(ctx, keyProfile, &profile); err != nil {
		return nil, err
	}
	snap.Profile = &profile
	if err := s.load(ctx, keyMilestones, &snap.Milestones); err != nil {
		return nil, err
	}
	if err := s.load(ctx, keyDailyGoals, &snap.DailyGoals); err != nil {
		return nil, err
	}
	if err := s.load(ctx, keyPortfolio, &snap.Portfolio); err != nil {
		return nil, err
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return raw, nil
}

// Import parses an export document and overwrites the collections it names.
// Keys absent from the document leave the corresponding collection untouched.
// An unparseable or unsupported document fails without modifying any state.
func (s *Store) Import(ctx context.Context, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureSeeded(ctx); err != nil {
		return err
	}

	var snap snapshotDoc
	if err := json.Unmarshal(doc, &snap); err != nil {
		return models.NewDataFormatError("import", err)
	}
	if snap.Version != nil && *snap.Version != SnapshotVersion {
		return models.NewDataFormatError("version", fmt.Errorf("unsupported export version %d", *snap.Version))
	}

	if snap.Profile != nil {
		if err := s.save(ctx, keyProfile, snap.Profile); err != nil {
			return err
		}
	}
	if snap.Milestones != nil {
		if err := s.save(ctx, keyMilestones, *snap.Milestones); err != nil {
			return err
		}
	}
	if snap.DailyGoals != nil {
		if err := s.save(ctx, keyDailyGoals, *snap.DailyGoals); err != nil {
			return err
		}
	}
	if snap.Portfolio != nil {
		if err := s.save(ctx, keyPortfolio, *snap.Portfolio); err != nil {
			return err
		}
	}
	return nil
}
