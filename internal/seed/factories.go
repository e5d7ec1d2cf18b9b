// Package seed provides helpers to create demo data for development and
// testing. It is never invoked in production.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"waypoint/internal/models"
	"waypoint/internal/wire"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var demoTargetJobs = []string{
	"Backend Developer", "Frontend Developer", "Data Analyst",
	"DevOps Engineer", "Mobile Developer",
}

var demoSkills = []string{
	"Go", "Python", "JavaScript", "SQL", "React", "Docker", "Linux", "Git",
}

// Factory builds demo entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateStudent persists a demo student account with a populated profile.
// Every demo account uses the same password for easy local login.
func (f *Factory) CreateStudent(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Email:    gofakeit.Email(),
		Password: string(hashed),
		Role:     models.RoleStudent,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	skills := f.pick(demoSkills, 2+f.rand.Intn(3))
	profile := wire.ProfileToRow(&models.UserProfile{
		UserID:        user.ID,
		Role:          user.Role,
		Name:          gofakeit.Name(),
		School:        gofakeit.Company() + " University",
		Department:    "Computer Science",
		Grade:         1 + f.rand.Intn(4),
		TargetJob:     demoTargetJobs[f.rand.Intn(len(demoTargetJobs))],
		TargetCompany: []string{gofakeit.Company(), gofakeit.Company()},
		Skills:        skills,
		Introduction:  gofakeit.Sentence(12),
	})
	if err := f.db.Create(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return user, nil
}

// CreateCounselor persists a demo admin account with a minimal profile.
func (f *Factory) CreateCounselor(email string) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create counselor: %w", err)
	}

	profile := wire.ProfileToRow(&models.UserProfile{
		UserID: user.ID,
		Role:   user.Role,
		Name:   gofakeit.Name(),
	})
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateMilestones persists n demo milestones for a user with a mix of
// completion states.
func (f *Factory) CreateMilestones(userID uint, n int) error {
	categories := []models.Category{
		models.CategoryStudy, models.CategoryCertificate,
		models.CategoryProject, models.CategoryActivity, models.CategoryJobPrep,
	}

	rows := make([]wire.MilestoneRow, 0, n)
	for i := 0; i < n; i++ {
		tasks := make([]models.Task, 0, 3)
		for j := 0; j < 2+f.rand.Intn(2); j++ {
			tasks = append(tasks, models.Task{
				ID:        gofakeit.UUID(),
				Title:     gofakeit.Sentence(4),
				Completed: f.rand.Intn(2) == 0,
			})
		}

		start := time.Now().AddDate(0, 0, -f.rand.Intn(90))
		m := models.Milestone{
			Title:       gofakeit.Sentence(4),
			Description: gofakeit.Sentence(10),
			Category:    categories[f.rand.Intn(len(categories))],
			StartDate:   start.Format("2006-01-02"),
			EndDate:     start.AddDate(0, 0, 14+f.rand.Intn(60)).Format("2006-01-02"),
			Status:      models.StatusNotStarted,
			Tasks:       tasks,
			Order:       i,
		}
		m.Recalculate()
		rows = append(rows, *wire.MilestoneToRow(userID, &m))
	}
	return f.db.Create(&rows).Error
}

// CreateDailyGoals persists demo daily goal records for the past n days.
func (f *Factory) CreateDailyGoals(userID uint, n int) error {
	rows := make([]wire.DailyGoalRow, 0, n)
	for i := 0; i < n; i++ {
		goals := []models.GoalItem{
			{ID: gofakeit.UUID(), Text: gofakeit.Sentence(5), Category: models.CategoryStudy, Completed: f.rand.Intn(2) == 0},
			{ID: gofakeit.UUID(), Text: gofakeit.Sentence(5), Category: models.CategoryJobPrep, Completed: f.rand.Intn(2) == 0},
		}
		g := models.DailyGoal{
			Date:       time.Now().AddDate(0, 0, -i-1).Format("2006-01-02"),
			Goals:      goals,
			Reflection: gofakeit.Sentence(8),
			Mood:       1 + f.rand.Intn(5),
			StudyHours: float64(f.rand.Intn(13)) / 2,
		}
		rows = append(rows, *wire.DailyGoalToRow(userID, &g))
	}
	return f.db.Create(&rows).Error
}

// CreatePortfolioItems persists n demo portfolio entries for a user.
func (f *Factory) CreatePortfolioItems(userID uint, n int) error {
	types := []models.PortfolioType{
		models.PortfolioProject, models.PortfolioCertificate,
		models.PortfolioAward, models.PortfolioActivity, models.PortfolioExperience,
	}

	rows := make([]wire.PortfolioItemRow, 0, n)
	for i := 0; i < n; i++ {
		item := models.PortfolioItem{
			Type:        types[f.rand.Intn(len(types))],
			Title:       gofakeit.Sentence(3),
			Description: gofakeit.Sentence(10),
			Date:        time.Now().AddDate(0, -f.rand.Intn(12), 0).Format("2006-01-02"),
			Tags:        f.pick(demoSkills, 1+f.rand.Intn(3)),
			Images:      []string{},
			Links:       models.PortfolioLinks{GitHub: gofakeit.URL()},
		}
		rows = append(rows, *wire.PortfolioItemToRow(userID, &item))
	}
	return f.db.Create(&rows).Error
}

func (f *Factory) pick(pool []string, n int) []string {
	idx := f.rand.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, pool[i])
	}
	return out
}
