package wire

import "waypoint/internal/models"

// Sparse update builders. Only fields explicitly present in a partial update
// appear in the outbound map; absent means "leave unchanged", never "clear".

// ProfileUpdates builds a column map from a partial profile change.
func ProfileUpdates(u models.ProfileUpdate) map[string]any {
	updates := map[string]any{}
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.School != nil {
		updates["school"] = *u.School
	}
	if u.Department != nil {
		updates["department"] = *u.Department
	}
	if u.Grade != nil {
		updates["grade"] = *u.Grade
	}
	if u.TargetJob != nil {
		updates["target_job"] = *u.TargetJob
	}
	if u.TargetCompany != nil {
		updates["target_company"] = jsonColumn(*u.TargetCompany)
	}
	if u.Skills != nil {
		updates["skills"] = jsonColumn(*u.Skills)
	}
	if u.Introduction != nil {
		updates["introduction"] = *u.Introduction
	}
	if u.ProfileImage != nil {
		updates["profile_image"] = *u.ProfileImage
	}
	return updates
}

// MilestoneUpdates builds a column map from a partial milestone change.
func MilestoneUpdates(u models.MilestoneUpdate) map[string]any {
	updates := map[string]any{}
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.Category != nil {
		updates["category"] = string(*u.Category)
	}
	if u.StartDate != nil {
		updates["start_date"] = *u.StartDate
	}
	if u.EndDate != nil {
		updates["end_date"] = *u.EndDate
	}
	if u.Status != nil {
		updates["status"] = string(*u.Status)
	}
	if u.Progress != nil {
		updates["progress"] = *u.Progress
	}
	if u.Tasks != nil {
		updates["tasks"] = jsonColumn(*u.Tasks)
	}
	if u.Order != nil {
		updates["sort_order"] = *u.Order
	}
	return updates
}

// DailyGoalUpdates builds a column map from a partial daily-goal change.
func DailyGoalUpdates(u models.DailyGoalUpdate) map[string]any {
	updates := map[string]any{}
	if u.Goals != nil {
		updates["goals"] = jsonColumn(*u.Goals)
	}
	if u.Reflection != nil {
		updates["reflection"] = *u.Reflection
	}
	if u.Mood != nil {
		updates["mood"] = *u.Mood
	}
	if u.StudyHours != nil {
		updates["study_hours"] = *u.StudyHours
	}
	return updates
}

// PortfolioUpdates builds a column map from a partial portfolio-item change.
func PortfolioUpdates(u models.PortfolioUpdate) map[string]any {
	updates := map[string]any{}
	if u.Type != nil {
		updates["type"] = string(*u.Type)
	}
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.Date != nil {
		updates["date"] = *u.Date
	}
	if u.Tags != nil {
		updates["tags"] = jsonColumn(*u.Tags)
	}
	if u.Images != nil {
		updates["images"] = jsonColumn(*u.Images)
	}
	if u.Links != nil {
		updates["links"] = jsonColumn(*u.Links)
	}
	if u.Details != nil {
		updates["details"] = *u.Details
	}
	return updates
}
