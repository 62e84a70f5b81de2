package service

import (
	"context"
	"strings"

	"taskhive/internal/models"
	"taskhive/internal/repository"
)

// TagService enforces tag ownership. Tags are strictly private: listing,
// reading, and deleting are owner-only, and non-owner access reads as not
// found. Tag names are unique per owner, so different users can hold tags
// with the same name.
type TagService struct {
	tagRepo repository.TagRepository
}

// NewTagService returns a new TagService.
func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// CreateTag creates (or returns the existing) tag with the given name for
// the actor. Re-creating an existing name is a no-op returning the same tag.
func (s *TagService) CreateTag(ctx context.Context, actorID uint, name string) (*models.Tag, error) {
	if actorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Tag name is required")
	}
	if len(name) > 50 {
		return nil, models.NewValidationError("Tag name too long (max 50 characters)")
	}
	return s.tagRepo.GetOrCreate(ctx, actorID, name)
}

// GetTag returns the tag if the actor owns it.
func (s *TagService) GetTag(ctx context.Context, actorID, tagID uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	if tag.OwnerID != actorID {
		return nil, models.NewNotFoundError("Tag", tagID)
	}
	return tag, nil
}

// ListTags returns the actor's tags.
func (s *TagService) ListTags(ctx context.Context, actorID uint) ([]*models.Tag, error) {
	if actorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}
	return s.tagRepo.ListByOwner(ctx, actorID)
}

// DeleteTag deletes the actor's own tag, detaching it from any notes.
func (s *TagService) DeleteTag(ctx context.Context, actorID, tagID uint) error {
	tag, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return err
	}
	if tag.OwnerID != actorID {
		return models.NewNotFoundError("Tag", tagID)
	}
	return s.tagRepo.Delete(ctx, tagID)
}
