package seed

import "waypoint/internal/models"

// referenceGuides is the built-in career guide catalog. Guides are global
// reference data, not user content, so they are seeded rather than created
// through the API.
func referenceGuides() []models.CareerGuide {
	return []models.CareerGuide{
		{
			JobCategory: "backend",
			Title:       "Backend Developer",
			Description: "Server-side development with databases and APIs",
			GuideText:   "Backend roles reward depth in one language plus solid database and networking fundamentals. Ship at least one service you can talk about in detail.",
			RoadmapTemplate: []models.RoadmapStep{
				{Title: "Programming fundamentals", Description: "One language, data structures, testing habits", Category: models.CategoryStudy, DurationDays: 60},
				{Title: "Database and SQL", Description: "Modeling, indexing, transactions", Category: models.CategoryStudy, DurationDays: 30},
				{Title: "Build and deploy a REST API", Description: "Auth, persistence, deployed somewhere public", Category: models.CategoryProject, DurationDays: 45},
				{Title: "Information processing certificate", Description: "National engineer certification", Category: models.CategoryCertificate, DurationDays: 60},
				{Title: "Internship applications", Description: "Resume, portfolio polish, applications", Category: models.CategoryJobPrep, DurationDays: 30},
			},
			RecommendedActivities: []string{
				"Contribute to an open source project",
				"Join a backend study group",
				"Write postmortems for your own bugs",
			},
			Checklist: []string{
				"One deployed service with a database",
				"Resume reviewed by a working developer",
				"Comfortable explaining HTTP end to end",
			},
		},
		{
			JobCategory: "frontend",
			Title:       "Frontend Developer",
			Description: "Web interfaces and client-side engineering",
			GuideText:   "Frontend hiring leans on a visible portfolio. Two polished projects beat ten half-finished ones.",
			RoadmapTemplate: []models.RoadmapStep{
				{Title: "HTML, CSS, JavaScript", Description: "Core web platform without frameworks", Category: models.CategoryStudy, DurationDays: 45},
				{Title: "A component framework", Description: "React or Vue, with state management", Category: models.CategoryStudy, DurationDays: 45},
				{Title: "Portfolio site", Description: "Your own site, responsive and fast", Category: models.CategoryProject, DurationDays: 21},
				{Title: "Team project", Description: "Something built with others, with version control discipline", Category: models.CategoryProject, DurationDays: 60},
				{Title: "Interview preparation", Description: "DOM, async, rendering questions", Category: models.CategoryJobPrep, DurationDays: 21},
			},
			RecommendedActivities: []string{
				"Clone a well-known UI and compare against the original",
				"Publish a small npm package",
			},
			Checklist: []string{
				"Portfolio site live on a custom domain",
				"Two projects with real users or real data",
			},
		},
		{
			JobCategory: "data",
			Title:       "Data Analyst",
			Description: "Analytics, visualization, and data storytelling",
			GuideText:   "Analysts are hired on evidence of judgment: pick messy public datasets and publish your reasoning, not just your charts.",
			RoadmapTemplate: []models.RoadmapStep{
				{Title: "SQL and spreadsheets", Description: "Joins, window functions, pivot fluency", Category: models.CategoryStudy, DurationDays: 30},
				{Title: "Python for analysis", Description: "pandas, plotting, notebooks", Category: models.CategoryStudy, DurationDays: 45},
				{Title: "ADsP certificate", Description: "Data analysis semi-professional certification", Category: models.CategoryCertificate, DurationDays: 45},
				{Title: "Public dataset project", Description: "End-to-end analysis with a written conclusion", Category: models.CategoryProject, DurationDays: 30},
				{Title: "Case interview practice", Description: "Metrics definitions, A/B reasoning", Category: models.CategoryJobPrep, DurationDays: 21},
			},
			RecommendedActivities: []string{
				"Enter a Kaggle or Dacon competition",
				"Recreate a chart from a news article with raw data",
			},
			Checklist: []string{
				"Three published analyses",
				"Can explain p-values without notes",
			},
		},
	}
}
