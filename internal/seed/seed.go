// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"taskhive/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumNotes    int
	NumTasks    int
	ShouldClean bool
}

var tagPool = []string{
	"work", "personal", "ideas", "reading", "golang", "infra", "recipes",
	"urgent", "someday", "journal", "meetings", "research", "fitness",
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Seeder{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Seed populates the database with test data
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Starting database seeding with %d users, %d notes, %d tasks...",
		opts.NumUsers, opts.NumNotes, opts.NumTasks)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	notes, err := s.createNotes(users, opts.NumNotes)
	if err != nil {
		return fmt.Errorf("failed to create notes: %w", err)
	}
	log.Printf("%d notes created", len(notes))

	if err := s.createTasks(users, opts.NumTasks); err != nil {
		return fmt.Errorf("failed to create tasks: %w", err)
	}
	log.Printf("%d tasks created", opts.NumTasks)

	if err := s.createFollows(users); err != nil {
		return fmt.Errorf("failed to create follow graph: %w", err)
	}
	log.Println("follow graph created")

	if err := s.createEngagement(users, notes); err != nil {
		return fmt.Errorf("failed to create comments and likes: %w", err)
	}
	log.Println("comments and likes created")

	log.Println("Database seeding completed successfully!")
	return nil
}

// ClearAll truncates every seeded table.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE likes, comments, note_tags, notes, tags, tasks, follows, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

func (s *Seeder) createUsers(count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// Always include some specific users for consistency if cleaning
	if count >= 2 {
		for _, u := range []string{"demo", "test"} {
			user := models.User{
				Username: u,
				Email:    fmt.Sprintf("%s@example.com", u),
				Password: string(hashedPassword),
				Bio:      "One of the originals.",
				Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", u),
			}
			if err := s.db.Create(&user).Error; err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		username := fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i)

		user := models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@example.com", username),
			Password: string(hashedPassword),
			Bio:      gofakeit.Sentence(8),
			Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
		}
		if err := s.db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", username, err)
			continue
		}
		users = append(users, user)

		if i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

func (s *Seeder) createNotes(users []models.User, count int) ([]models.Note, error) {
	notes := make([]models.Note, 0, count)

	for i := 0; i < count; i++ {
		user := users[s.r.Intn(len(users))]

		note := models.Note{
			Title:    gofakeit.Sentence(5),
			Content:  gofakeit.Paragraph(1, 3, 5, "\n"),
			OwnerID:  user.ID,
			IsPublic: s.r.Float32() < 0.6,
			Tags:     s.pickTags(user.ID),
		}

		// realistic created_at spread
		daysBack := s.r.Intn(90)
		note.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(s.r.Intn(24))*time.Hour)

		if err := s.db.Create(&note).Error; err != nil {
			return nil, err
		}
		notes = append(notes, note)

		if i%100 == 0 {
			log.Printf("Created %d notes...", i)
		}
	}

	return notes, nil
}

// pickTags returns up to three of the user's tags, creating them on first use.
func (s *Seeder) pickTags(ownerID uint) []models.Tag {
	n := s.r.Intn(4)
	tags := make([]models.Tag, 0, n)
	for i := 0; i < n; i++ {
		name := tagPool[s.r.Intn(len(tagPool))]
		var tag models.Tag
		if err := s.db.Where(models.Tag{OwnerID: ownerID, Name: name}).
			FirstOrCreate(&tag).Error; err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

func (s *Seeder) createTasks(users []models.User, count int) error {
	statuses := []models.TaskStatus{models.TaskStatusTodo, models.TaskStatusInProgress, models.TaskStatusDone}
	priorities := []models.TaskPriority{models.TaskPriorityLow, models.TaskPriorityMedium, models.TaskPriorityHigh}

	for i := 0; i < count; i++ {
		user := users[s.r.Intn(len(users))]

		task := models.Task{
			Title:       gofakeit.Sentence(4),
			Description: gofakeit.Paragraph(1, 2, 4, "\n"),
			OwnerID:     user.ID,
			Status:      statuses[s.r.Intn(len(statuses))],
			Priority:    priorities[s.r.Intn(len(priorities))],
			IsPublic:    s.r.Float32() < 0.2,
		}

		// Mix of overdue, upcoming, and undated tasks.
		switch s.r.Intn(3) {
		case 0:
			due := time.Now().AddDate(0, 0, -s.r.Intn(14)-1)
			task.DueDate = &due
		case 1:
			due := time.Now().AddDate(0, 0, s.r.Intn(30)+1)
			task.DueDate = &due
		}

		if err := s.db.Create(&task).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createFollows(users []models.User) error {
	for i := range users {
		// Each user follows a handful of others.
		n := s.r.Intn(6)
		for j := 0; j < n; j++ {
			target := users[s.r.Intn(len(users))]
			if target.ID == users[i].ID {
				continue
			}
			follow := models.Follow{FollowerID: users[i].ID, FollowingID: target.ID}
			// Duplicate edges are expected here; the unique index rejects them.
			_ = s.db.Create(&follow).Error
		}
	}
	return nil
}

func (s *Seeder) createEngagement(users []models.User, notes []models.Note) error {
	for i := range notes {
		if !notes[i].IsPublic {
			continue
		}

		for c := 0; c < s.r.Intn(4); c++ {
			comment := models.Comment{
				Content:     gofakeit.Sentence(10),
				NoteID:      notes[i].ID,
				CommenterID: users[s.r.Intn(len(users))].ID,
			}
			if err := s.db.Create(&comment).Error; err != nil {
				return err
			}
		}

		for l := 0; l < s.r.Intn(6); l++ {
			like := models.Like{
				NoteID: notes[i].ID,
				UserID: users[s.r.Intn(len(users))].ID,
			}
			// Duplicate likes are expected here; the unique index rejects them.
			_ = s.db.Create(&like).Error
		}
	}
	return nil
}
