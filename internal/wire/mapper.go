package wire

import (
	"waypoint/internal/models"

	"github.com/google/uuid"
)

// ProfileToDomain maps a stored profile row to its domain record. Null
// columns coerce to the documented defaults (empty string, zero, empty list).
func ProfileToDomain(row *ProfileRow) (*models.UserProfile, error) {
	p := &models.UserProfile{
		UserID:        row.UserID,
		Role:          models.Role(row.Role),
		Name:          row.Name,
		School:        strOrEmpty(row.School),
		Department:    strOrEmpty(row.Department),
		Grade:         intOrZero(row.Grade),
		TargetJob:     strOrEmpty(row.TargetJob),
		TargetCompany: []string{},
		Skills:        []string{},
		Introduction:  strOrEmpty(row.Introduction),
		ProfileImage:  strOrEmpty(row.ProfileImage),
	}
	if err := decodeJSONColumn(row.TargetCompany, "target_company", &p.TargetCompany); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(row.Skills, "skills", &p.Skills); err != nil {
		return nil, err
	}
	return p, nil
}

// ProfileToRow maps a domain profile to its stored form.
func ProfileToRow(p *models.UserProfile) *ProfileRow {
	return &ProfileRow{
		UserID:        p.UserID,
		Role:          string(p.Role),
		Name:          p.Name,
		School:        ptr(p.School),
		Department:    ptr(p.Department),
		Grade:         ptr(p.Grade),
		TargetJob:     ptr(p.TargetJob),
		TargetCompany: jsonColumn(p.TargetCompany),
		Skills:        jsonColumn(p.Skills),
		Introduction:  ptr(p.Introduction),
		ProfileImage:  ptr(p.ProfileImage),
	}
}

// MilestoneToDomain maps a stored milestone row to its domain record.
func MilestoneToDomain(row *MilestoneRow) (*models.Milestone, error) {
	m := &models.Milestone{
		ID:          row.ID,
		Title:       row.Title,
		Description: strOrEmpty(row.Description),
		Category:    models.Category(row.Category),
		StartDate:   strOrEmpty(row.StartDate),
		EndDate:     strOrEmpty(row.EndDate),
		Status:      models.MilestoneStatus(row.Status),
		Progress:    intOrZero(row.Progress),
		Tasks:       []models.Task{},
		Order:       intOrZero(row.SortOrder),
	}
	if m.Status == "" {
		m.Status = models.StatusNotStarted
	}
	if err := decodeJSONColumn(row.Tasks, "tasks", &m.Tasks); err != nil {
		return nil, err
	}
	return m, nil
}

// MilestoneToRow maps a domain milestone to its stored form, scoped to the
// owning user. A missing ID gets a fresh random identifier.
func MilestoneToRow(userID uint, m *models.Milestone) *MilestoneRow {
	id := m.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &MilestoneRow{
		ID:          id,
		UserID:      userID,
		Title:       m.Title,
		Description: ptr(m.Description),
		Category:    string(m.Category),
		StartDate:   ptr(m.StartDate),
		EndDate:     ptr(m.EndDate),
		Status:      string(m.Status),
		Progress:    ptr(m.Progress),
		Tasks:       jsonColumn(m.Tasks),
		SortOrder:   ptr(m.Order),
	}
}

// DailyGoalToDomain maps a stored daily-goal row to its domain record.
// A null mood coerces to the neutral default.
func DailyGoalToDomain(row *DailyGoalRow) (*models.DailyGoal, error) {
	g := &models.DailyGoal{
		ID:         row.ID,
		Date:       row.Date,
		Goals:      []models.GoalItem{},
		Reflection: strOrEmpty(row.Reflection),
		Mood:       models.DefaultMood,
		StudyHours: floatOrZero(row.StudyHours),
	}
	if row.Mood != nil {
		g.Mood = *row.Mood
	}
	if err := decodeJSONColumn(row.Goals, "goals", &g.Goals); err != nil {
		return nil, err
	}
	return g, nil
}

// DailyGoalToRow maps a domain daily goal to its stored form.
func DailyGoalToRow(userID uint, g *models.DailyGoal) *DailyGoalRow {
	id := g.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &DailyGoalRow{
		ID:         id,
		UserID:     userID,
		Date:       g.Date,
		Goals:      jsonColumn(g.Goals),
		Reflection: ptr(g.Reflection),
		Mood:       ptr(g.Mood),
		StudyHours: ptr(g.StudyHours),
	}
}

// PortfolioItemToDomain maps a stored portfolio row to its domain record.
func PortfolioItemToDomain(row *PortfolioItemRow) (*models.PortfolioItem, error) {
	item := &models.PortfolioItem{
		ID:          row.ID,
		Type:        models.PortfolioType(row.Type),
		Title:       row.Title,
		Description: strOrEmpty(row.Description),
		Date:        strOrEmpty(row.Date),
		Tags:        []string{},
		Images:      []string{},
		Details:     strOrEmpty(row.Details),
	}
	if err := decodeJSONColumn(row.Tags, "tags", &item.Tags); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(row.Images, "images", &item.Images); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(row.Links, "links", &item.Links); err != nil {
		return nil, err
	}
	return item, nil
}

// PortfolioItemToRow maps a domain portfolio item to its stored form.
func PortfolioItemToRow(userID uint, item *models.PortfolioItem) *PortfolioItemRow {
	id := item.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &PortfolioItemRow{
		ID:          id,
		UserID:      userID,
		Type:        string(item.Type),
		Title:       item.Title,
		Description: ptr(item.Description),
		Date:        ptr(item.Date),
		Tags:        jsonColumn(item.Tags),
		Images:      jsonColumn(item.Images),
		Links:       jsonColumn(item.Links),
		Details:     ptr(item.Details),
	}
}

// CareerGuideToDomain maps a stored guide row to its domain record.
func CareerGuideToDomain(row *CareerGuideRow) (*models.CareerGuide, error) {
	g := &models.CareerGuide{
		ID:                    row.ID,
		JobCategory:           row.JobCategory,
		Title:                 row.Title,
		Description:           strOrEmpty(row.Description),
		RoadmapTemplate:       []models.RoadmapStep{},
		GuideText:             row.GuideText,
		RecommendedActivities: []string{},
		Checklist:             []string{},
	}
	if err := decodeJSONColumn(row.RoadmapTemplate, "roadmap_template", &g.RoadmapTemplate); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(row.RecommendedActivities, "recommended_activities", &g.RecommendedActivities); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(row.Checklist, "checklist", &g.Checklist); err != nil {
		return nil, err
	}
	return g, nil
}

// CareerGuideToRow maps a domain guide to its stored form.
func CareerGuideToRow(g *models.CareerGuide) *CareerGuideRow {
	id := g.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &CareerGuideRow{
		ID:                    id,
		JobCategory:           g.JobCategory,
		Title:                 g.Title,
		Description:           ptr(g.Description),
		RoadmapTemplate:       jsonColumn(g.RoadmapTemplate),
		GuideText:             g.GuideText,
		RecommendedActivities: jsonColumn(g.RecommendedActivities),
		Checklist:             jsonColumn(g.Checklist),
	}
}

// CounselingLogToDomain maps a stored counseling log row to its domain record.
func CounselingLogToDomain(row *CounselingLogRow) *models.CounselingLog {
	logType := models.LogType(row.Type)
	if logType == "" {
		logType = models.LogRegular
	}
	return &models.CounselingLog{
		ID:          row.ID,
		StudentID:   row.StudentID,
		CounselorID: row.CounselorID,
		Content:     row.Content,
		Type:        logType,
		CreatedAt:   row.CreatedAt,
	}
}

// CounselingLogToRow maps a domain counseling log to its stored form.
func CounselingLogToRow(l *models.CounselingLog) *CounselingLogRow {
	id := l.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &CounselingLogRow{
		ID:          id,
		StudentID:   l.StudentID,
		CounselorID: l.CounselorID,
		Content:     l.Content,
		Type:        string(l.Type),
	}
}
