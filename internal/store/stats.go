package store

import (
	"context"

	"waypoint/internal/models"
)

// StatsStore aggregates the dashboard headline numbers from the other stores.
type StatsStore struct {
	milestones *MilestoneStore
	daily      *DailyGoalStore
	portfolio  *PortfolioStore
}

// NewStatsStore returns a stats store over the given entity stores.
func NewStatsStore(milestones *MilestoneStore, daily *DailyGoalStore, portfolio *PortfolioStore) *StatsStore {
	return &StatsStore{milestones: milestones, daily: daily, portfolio: portfolio}
}

// Snapshot computes the current dashboard aggregates.
func (s *StatsStore) Snapshot(ctx context.Context) (*models.DashboardStats, error) {
	milestones, err := s.milestones.List(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.daily.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.portfolio.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalMilestones: len(milestones),
		PortfolioCount:  len(items),
	}
	for _, m := range milestones {
		if m.Status == models.StatusCompleted {
			stats.CompletedMilestones++
		}
	}
	for _, g := range goals {
		stats.TotalStudyHours += g.StudyHours
		for _, item := range g.Goals {
			if item.Completed {
				stats.CompletedGoals++
			}
		}
	}
	return stats, nil
}
