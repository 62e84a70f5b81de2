// Command main runs the database seeder for TaskHive.
package main

import (
	"flag"
	"log"

	"taskhive/internal/config"
	"taskhive/internal/database"
	"taskhive/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numNotes := flag.Int("notes", 200, "Number of notes to create")
	numTasks := flag.Int("tasks", 150, "Number of tasks to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d users, %d notes, %d tasks, clean=%v\n",
		*numUsers, *numNotes, *numTasks, *shouldClean)

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Seed(seed.Options{
		NumUsers:    *numUsers,
		NumNotes:    *numNotes,
		NumTasks:    *numTasks,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}
