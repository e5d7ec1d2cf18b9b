package database

import (
	"waypoint/internal/models"
	"waypoint/internal/wire"
)

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&wire.ProfileRow{},
		&wire.MilestoneRow{},
		&wire.DailyGoalRow{},
		&wire.PortfolioItemRow{},
		&wire.CareerGuideRow{},
		&wire.CounselingLogRow{},
	}
}
