// Command main runs the database seeder for Waypoint.
package main

import (
	"flag"
	"log"

	"waypoint/internal/config"
	"waypoint/internal/database"
	"waypoint/internal/seed"
)

func main() {
	numStudents := flag.Int("students", 20, "Number of student accounts to create")
	numCounselors := flag.Int("counselors", 2, "Number of counselor accounts to create")
	shouldClean := flag.Bool("clean", true, "Clean existing data before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Printf("Target: %d students, %d counselors, clean=%v\n",
		*numStudents, *numCounselors, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumStudents:   *numStudents,
		NumCounselors: *numCounselors,
		ShouldClean:   *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All seeded accounts have the password: password123")
}
