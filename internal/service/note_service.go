// Package service contains the business rules of the application: ownership
// and visibility checks, feed composition, and input validation. Every
// operation receives the acting user's ID; handlers never bypass this layer.
package service

import (
	"context"
	"strings"

	"taskhive/internal/models"
	"taskhive/internal/observability"
	"taskhive/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

const (
	maxTitleLen    = 255
	maxContentLen  = 100000
	maxTagsPerNote = 20
)

// NoteService enforces note ownership and visibility rules.
//
// The rules are deliberately asymmetric: a public note is readable by anyone,
// but only the owner may ever update or delete it. A private note of another
// user is reported as not found, not forbidden, so its existence is never
// leaked.
type NoteService struct {
	noteRepo   repository.NoteRepository
	tagRepo    repository.TagRepository
	followRepo repository.FollowRepository
}

// NewNoteService returns a new NoteService.
func NewNoteService(
	noteRepo repository.NoteRepository,
	tagRepo repository.TagRepository,
	followRepo repository.FollowRepository,
) *NoteService {
	return &NoteService{
		noteRepo:   noteRepo,
		tagRepo:    tagRepo,
		followRepo: followRepo,
	}
}

// CreateNoteInput carries the fields for a new note. The owner is always the
// acting user; an owner submitted by the client is ignored upstream.
type CreateNoteInput struct {
	ActorID  uint
	Title    string
	Content  string
	IsPublic bool
	TagNames []string
}

// UpdateNoteInput is a patch: nil fields are left unchanged.
type UpdateNoteInput struct {
	ActorID  uint
	NoteID   uint
	Title    *string
	Content  *string
	IsPublic *bool
	TagNames *[]string
}

// ListNotesInput narrows the owned-plus-public listing.
type ListNotesInput struct {
	ActorID     uint
	TagName     string
	TitleSearch string
	Limit       int
	Offset      int
}

// CreateNote creates a note owned by the actor and attaches the named tags,
// creating any of the actor's tags that do not exist yet.
func (s *NoteService) CreateNote(ctx context.Context, in CreateNoteInput) (*models.Note, error) {
	if in.ActorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Title and content are required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 255 characters)")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long")
	}

	tags, err := s.resolveTags(ctx, in.ActorID, in.TagNames)
	if err != nil {
		return nil, err
	}

	note := &models.Note{
		Title:    in.Title,
		Content:  in.Content,
		IsPublic: in.IsPublic,
		OwnerID:  in.ActorID,
		Tags:     tags,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	return s.noteRepo.GetByID(ctx, note.ID, in.ActorID)
}

// GetNote returns the note if the actor owns it or it is public. A private
// note of another user is indistinguishable from a missing one.
func (s *NoteService) GetNote(ctx context.Context, actorID, noteID uint) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID, actorID)
	if err != nil {
		return nil, err
	}
	if !note.IsPublic && note.OwnerID != actorID {
		return nil, models.NewNotFoundError("Note", noteID)
	}
	return note, nil
}

// ListNotes returns the union of the actor's notes and all public notes.
func (s *NoteService) ListNotes(ctx context.Context, in ListNotesInput) ([]*models.Note, error) {
	if in.ActorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}
	return s.noteRepo.ListVisible(ctx, in.ActorID, repository.NoteFilter{
		TagName:     in.TagName,
		TitleSearch: in.TitleSearch,
		Limit:       in.Limit,
		Offset:      in.Offset,
	})
}

// Feed returns public notes authored by the actor's social neighborhood
// (users they follow plus users following them), newest first. The actor's
// own notes never appear: the neighborhood is built from edges to and from
// the actor and cannot contain the actor itself. An empty neighborhood
// yields an empty feed, never an error.
func (s *NoteService) Feed(ctx context.Context, actorID uint, limit, offset int) ([]*models.Note, error) {
	if actorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}

	neighbors, err := s.followRepo.NeighborIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}
	observability.RecordFeedRequest(len(neighbors) == 0)
	observability.AddTraceAttributesToContext(ctx,
		attribute.Int("feed.neighborhood_size", len(neighbors)))
	return s.noteRepo.ListFeed(ctx, neighbors, limit, offset, actorID)
}

// UpdateNote applies a patch to the actor's own note. Non-owners are
// rejected even for public notes: public means readable, never writable.
func (s *NoteService) UpdateNote(ctx context.Context, in UpdateNoteInput) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, in.NoteID, in.ActorID)
	if err != nil {
		return nil, err
	}
	if note.OwnerID != in.ActorID {
		return nil, models.NewForbiddenError("You can only update your own notes")
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		if len(*in.Title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 255 characters)")
		}
		note.Title = *in.Title
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		note.Content = *in.Content
	}
	if in.IsPublic != nil {
		note.IsPublic = *in.IsPublic
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	if in.TagNames != nil {
		tags, tagErr := s.resolveTags(ctx, in.ActorID, *in.TagNames)
		if tagErr != nil {
			return nil, tagErr
		}
		if err := s.noteRepo.ReplaceTags(ctx, note, tags); err != nil {
			return nil, err
		}
	}

	return s.noteRepo.GetByID(ctx, note.ID, in.ActorID)
}

// DeleteNote deletes the actor's own note together with its comments and likes.
func (s *NoteService) DeleteNote(ctx context.Context, actorID, noteID uint) error {
	note, err := s.noteRepo.GetByID(ctx, noteID, actorID)
	if err != nil {
		return err
	}
	if note.OwnerID != actorID {
		return models.NewForbiddenError("You can only delete your own notes")
	}
	return s.noteRepo.Delete(ctx, noteID)
}

func (s *NoteService) resolveTags(ctx context.Context, ownerID uint, names []string) ([]models.Tag, error) {
	if len(names) > maxTagsPerNote {
		return nil, models.NewValidationError("Too many tags (max 20)")
	}

	tags := make([]models.Tag, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if len(name) > 50 {
			return nil, models.NewValidationError("Tag name too long (max 50 characters)")
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		tag, err := s.tagRepo.GetOrCreate(ctx, ownerID, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}
