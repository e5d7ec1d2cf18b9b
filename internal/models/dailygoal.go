package models

// DefaultMood is the neutral mood presented when a date has no record yet.
const DefaultMood = 3

// GoalItem is one short-term goal inside a daily record. MilestoneID is a
// soft reference and is not enforced against the milestone collection.
type GoalItem struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Completed   bool     `json:"completed"`
	Category    Category `json:"category"`
	MilestoneID string   `json:"milestoneId,omitempty"`
}

// DailyGoal holds the goals and reflection for one calendar date. At most one
// record exists per (user, date); the database enforces this with a unique
// constraint, the upsert path merely rides on it.
type DailyGoal struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	Goals      []GoalItem `json:"goals"`
	Reflection string     `json:"reflection"`
	Mood       int        `json:"mood"`
	StudyHours float64    `json:"studyHours"`
}

// NewTransientDailyGoal returns the unsaved default record shown for a date
// with no persisted entry.
func NewTransientDailyGoal(date string) *DailyGoal {
	return &DailyGoal{
		Date:  date,
		Goals: []GoalItem{},
		Mood:  DefaultMood,
	}
}

// DailyGoalUpdate carries a partial daily-goal change for setForDate.
type DailyGoalUpdate struct {
	Goals      *[]GoalItem `json:"goals,omitempty"`
	Reflection *string     `json:"reflection,omitempty"`
	Mood       *int        `json:"mood,omitempty" validate:"omitempty,gte=1,lte=5"`
	StudyHours *float64    `json:"studyHours,omitempty" validate:"omitempty,gte=0"`
}
