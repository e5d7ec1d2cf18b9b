// Package wire defines the relational row shapes and the bidirectional
// mapping between rows and domain records. Columns are snake_case and
// nullable; nested structures live in JSON columns.
package wire

import (
	"time"

	"gorm.io/datatypes"
)

// ProfileRow is the stored form of a user profile.
type ProfileRow struct {
	UserID        uint           `gorm:"primaryKey"`
	Role          string         `gorm:"type:varchar(16);not null;default:student"`
	Name          string         `gorm:"not null"`
	School        *string
	Department    *string
	Grade         *int
	TargetJob     *string
	TargetCompany datatypes.JSON
	Skills        datatypes.JSON
	Introduction  *string
	ProfileImage  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName implements the GORM table naming convention.
func (ProfileRow) TableName() string { return "profiles" }

// MilestoneRow is the stored form of a milestone. Tasks are a JSON column;
// the manual ranking column is sort_order because "order" is reserved SQL.
type MilestoneRow struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description *string
	Category    string `gorm:"not null"`
	StartDate   *string
	EndDate     *string
	Status      string `gorm:"not null;default:not-started"`
	Progress    *int
	Tasks       datatypes.JSON
	SortOrder   *int `gorm:"column:sort_order"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MilestoneRow) TableName() string { return "milestones" }

// DailyGoalRow is the stored form of a daily goal. The composite unique index
// on (user_id, date) is the actual guarantee behind upsert-by-date.
type DailyGoalRow struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	UserID     uint   `gorm:"not null;uniqueIndex:idx_daily_goals_user_date"`
	Date       string `gorm:"not null;uniqueIndex:idx_daily_goals_user_date"`
	Goals      datatypes.JSON
	Reflection *string
	Mood       *int
	StudyHours *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DailyGoalRow) TableName() string { return "daily_goals" }

// PortfolioItemRow is the stored form of a portfolio item.
type PortfolioItemRow struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Type        string `gorm:"not null"`
	Title       string `gorm:"not null"`
	Description *string
	Date        *string
	Tags        datatypes.JSON
	Images      datatypes.JSON
	Links       datatypes.JSON
	Details     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PortfolioItemRow) TableName() string { return "portfolio_items" }

// CareerGuideRow is the stored form of a career guide (global reference data).
type CareerGuideRow struct {
	ID                    string `gorm:"type:uuid;primaryKey"`
	JobCategory           string `gorm:"not null;index"`
	Title                 string `gorm:"not null"`
	Description           *string
	RoadmapTemplate       datatypes.JSON
	GuideText             string
	RecommendedActivities datatypes.JSON
	Checklist             datatypes.JSON
	CreatedAt             time.Time
}

func (CareerGuideRow) TableName() string { return "career_guides" }

// CounselingLogRow is the stored form of a counseling log entry.
type CounselingLogRow struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	StudentID   uint   `gorm:"not null;index"`
	CounselorID uint   `gorm:"not null;index"`
	Content     string `gorm:"type:text;not null"`
	Type        string `gorm:"not null;default:regular"`
	CreatedAt   time.Time
}

func (CounselingLogRow) TableName() string { return "counseling_logs" }
