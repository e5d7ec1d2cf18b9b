package local

import (
	"waypoint/internal/models"

	"github.com/google/uuid"
)

// seedProfile is the starter profile written on first access so the offline
// mode never opens on a blank screen.
func seedProfile() *models.UserProfile {
	return &models.UserProfile{
		UserID:        1,
		Role:          models.RoleStudent,
		Name:          "Demo Student",
		School:        "Hanbit University",
		Department:    "Computer Science",
		Grade:         3,
		TargetJob:     "Backend Developer",
		TargetCompany: []string{"Naver", "Kakao"},
		Skills:        []string{"Go", "SQL"},
		Introduction:  "Exploring backend development and preparing for my first internship.",
	}
}

func seedMilestones() []models.Milestone {
	first := models.Milestone{
		ID:          uuid.NewString(),
		Title:       "Finish database fundamentals",
		Description: "Relational modeling, SQL, and transactions",
		Category:    models.CategoryStudy,
		StartDate:   "2024-03-01",
		EndDate:     "2024-04-30",
		Order:       1,
		Tasks: []models.Task{
			{ID: uuid.NewString(), Title: "Normalization exercises", Completed: true},
			{ID: uuid.NewString(), Title: "Transaction isolation levels"},
		},
	}
	first.Recalculate()

	second := models.Milestone{
		ID:          uuid.NewString(),
		Title:       "Build a portfolio API",
		Description: "Small REST service deployed somewhere public",
		Category:    models.CategoryProject,
		StartDate:   "2024-05-01",
		EndDate:     "2024-06-30",
		Order:       2,
		Tasks: []models.Task{
			{ID: uuid.NewString(), Title: "Pick a project scope"},
			{ID: uuid.NewString(), Title: "Ship a first endpoint"},
		},
	}
	second.Recalculate()

	return []models.Milestone{first, second}
}

func seedPortfolio() []models.PortfolioItem {
	return []models.PortfolioItem{
		{
			ID:          uuid.NewString(),
			Type:        models.PortfolioProject,
			Title:       "Campus meal planner",
			Description: "Group project from the software engineering course",
			Date:        "2024-01-15",
			Tags:        []string{"team", "web"},
			Images:      []string{},
			Links:       models.PortfolioLinks{GitHub: "https://github.com/example/meal-planner"},
		},
	}
}
