// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"taskhive/internal/models"
	"taskhive/internal/observability"

	"gorm.io/gorm"
)

// NoteFilter narrows a note listing. Zero values mean "no filter".
type NoteFilter struct {
	TagName     string
	TitleSearch string
	Limit       int
	Offset      int
}

// NoteRepository defines the interface for note data operations
type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Note, error)
	ListVisible(ctx context.Context, actorID uint, f NoteFilter) ([]*models.Note, error)
	ListFeed(ctx context.Context, ownerIDs []uint, limit, offset int, currentUserID uint) ([]*models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	ReplaceTags(ctx context.Context, note *models.Note, tags []models.Tag) error
	Delete(ctx context.Context, id uint) error
}

// noteRepository implements NoteRepository
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

// applyNoteDetails adds subqueries to fetch counts and liked status in a single query.
func (r *noteRepository) applyNoteDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "notes.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.note_id = notes.id AND comments.deleted_at IS NULL) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.note_id = notes.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.note_id = notes.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Note, error) {
	var note models.Note
	err := r.applyNoteDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Owner").
		Preload("Tags").
		First(&note, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Note", id)
		}
		return nil, err
	}
	return &note, nil
}

// ListVisible returns the union of notes owned by the actor and public notes,
// optionally narrowed by tag name and title substring.
func (r *noteRepository) ListVisible(ctx context.Context, actorID uint, f NoteFilter) ([]*models.Note, error) {
	defer observability.TrackQuery("list_visible", "notes")()
	ctx, span := observability.GetTraceLayer().TraceRepositoryMethod(ctx, "ListVisible", "notes")
	defer span.End()

	var notes []*models.Note

	q := r.applyNoteDetails(r.db.WithContext(ctx), actorID).
		Preload("Owner").
		Preload("Tags").
		Where("notes.owner_id = ? OR notes.is_public = ?", actorID, true)

	if f.TagName != "" {
		q = q.Where("EXISTS(SELECT 1 FROM note_tags JOIN tags ON tags.id = note_tags.tag_id WHERE note_tags.note_id = notes.id AND tags.name = ?)", f.TagName)
	}
	if f.TitleSearch != "" {
		q = q.Where("notes.title ILIKE ?", "%"+f.TitleSearch+"%")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	err := q.Find(&notes).Error
	return notes, err
}

// ListFeed returns public notes owned by any of ownerIDs, newest first.
func (r *noteRepository) ListFeed(ctx context.Context, ownerIDs []uint, limit, offset int, currentUserID uint) ([]*models.Note, error) {
	if len(ownerIDs) == 0 {
		return []*models.Note{}, nil
	}
	defer observability.TrackQuery("list_feed", "notes")()
	ctx, span := observability.GetTraceLayer().TraceRepositoryMethod(ctx, "ListFeed", "notes")
	defer span.End()

	var notes []*models.Note
	err := r.applyNoteDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Owner").
		Preload("Tags").
		Where("notes.owner_id IN ? AND notes.is_public = ?", ownerIDs, true).
		Order("notes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error
	return notes, err
}

func (r *noteRepository) Update(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Omit("Tags", "Owner").Save(note).Error
}

// ReplaceTags swaps the note's tag set for the given tags.
func (r *noteRepository) ReplaceTags(ctx context.Context, note *models.Note, tags []models.Tag) error {
	if err := r.db.WithContext(ctx).Model(note).Association("Tags").Replace(tags); err != nil {
		return err
	}
	note.Tags = tags
	return nil
}

// Delete removes the note together with its comments and likes in one
// transaction, so no orphaned comment or like is ever observable. Tag rows
// survive; only the join entries are cleared.
func (r *noteRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Note{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Note{}, id).Error
	})
}
