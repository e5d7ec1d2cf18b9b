package seed

import (
	"context"
	"fmt"
	"log"

	"waypoint/internal/repository"
	"waypoint/internal/wire"

	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumStudents   int
	NumCounselors int
	ShouldClean   bool
}

// Seed populates the database with the built-in career guide catalog plus
// demo students and counselors carrying realistic content.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d students and %d counselors...", opts.NumStudents, opts.NumCounselors)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway")
		}
	}

	if err := SeedGuides(db); err != nil {
		return fmt.Errorf("failed to seed career guides: %w", err)
	}

	factory := NewFactory(db)

	for i := 0; i < opts.NumCounselors; i++ {
		if _, err := factory.CreateCounselor(fmt.Sprintf("counselor%d@waypoint.local", i+1)); err != nil {
			return fmt.Errorf("failed to create counselor: %w", err)
		}
	}

	for i := 0; i < opts.NumStudents; i++ {
		user, err := factory.CreateStudent()
		if err != nil {
			return fmt.Errorf("failed to create student: %w", err)
		}
		if err := factory.CreateMilestones(user.ID, 3); err != nil {
			return fmt.Errorf("failed to create milestones: %w", err)
		}
		if err := factory.CreateDailyGoals(user.ID, 7); err != nil {
			return fmt.Errorf("failed to create daily goals: %w", err)
		}
		if err := factory.CreatePortfolioItems(user.ID, 2); err != nil {
			return fmt.Errorf("failed to create portfolio items: %w", err)
		}
	}

	log.Println("Seeding complete")
	return nil
}

// SeedGuides inserts the built-in career guide catalog if not already
// present. Guides are matched by job category so reseeding is idempotent.
func SeedGuides(db *gorm.DB) error {
	repo := repository.NewGuideRepository(db)
	ctx := context.Background()

	var existing []wire.CareerGuideRow
	if err := db.Find(&existing).Error; err != nil {
		return err
	}
	present := make(map[string]struct{}, len(existing))
	for _, row := range existing {
		present[row.JobCategory] = struct{}{}
	}

	for _, guide := range referenceGuides() {
		if _, ok := present[guide.JobCategory]; ok {
			continue
		}
		g := guide
		if err := repo.Create(ctx, wire.CareerGuideToRow(&g)); err != nil {
			return err
		}
	}
	return nil
}

func clearData(db *gorm.DB) error {
	tables := []string{
		"counseling_logs", "portfolio_items", "daily_goals",
		"milestones", "profiles", "users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
