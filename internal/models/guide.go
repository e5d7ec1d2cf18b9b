package models

import "time"

// CareerGuide is global read-only reference data used to bulk-seed milestones
// for a job category. It is not owned by any user.
type CareerGuide struct {
	ID                    string        `json:"id"`
	JobCategory           string        `json:"jobCategory"`
	Title                 string        `json:"title"`
	Description           string        `json:"description"`
	RoadmapTemplate       []RoadmapStep `json:"roadmapTemplate"`
	GuideText             string        `json:"guideText"`
	RecommendedActivities []string      `json:"recommendedActivities"`
	Checklist             []string      `json:"checklist"`
}

// LogType classifies a counseling session.
type LogType string

const (
	LogRegular LogType = "regular"
	LogCareer  LogType = "career"
	LogCrisis  LogType = "crisis"
)

// CounselingLog is an append-only record of a counseling session between a
// student and a counselor. Logs are never edited, only created and listed.
type CounselingLog struct {
	ID          string    `json:"id"`
	StudentID   uint      `json:"studentId"`
	CounselorID uint      `json:"counselorId"`
	Content     string    `json:"content"`
	Type        LogType   `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DashboardStats aggregates the headline numbers shown on the dashboard.
type DashboardStats struct {
	TotalMilestones     int     `json:"totalMilestones"`
	CompletedMilestones int     `json:"completedMilestones"`
	CompletedGoals      int     `json:"completedGoals"`
	TotalStudyHours     float64 `json:"totalStudyHours"`
	PortfolioCount      int     `json:"portfolioCount"`
}
