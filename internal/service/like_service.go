package service

import (
	"context"
	"errors"

	"taskhive/internal/models"
	"taskhive/internal/repository"

	"gorm.io/gorm"
)

// LikeService enforces like rules. Unlike follows, a duplicate like is an
// error, not a no-op: the (note, user) uniqueness violation is reported as
// DUPLICATE. This asymmetry with the follow policy is intentional product
// behavior and must not be unified.
type LikeService struct {
	likeRepo repository.LikeRepository
	noteRepo repository.NoteRepository
}

// NewLikeService returns a new LikeService.
func NewLikeService(likeRepo repository.LikeRepository, noteRepo repository.NoteRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		noteRepo: noteRepo,
	}
}

// CreateLike likes an existing note on behalf of the actor. A second like of
// the same note by the same user fails with DUPLICATE; the unique index on
// (note_id, user_id) resolves concurrent duplicate creates to exactly one row.
func (s *LikeService) CreateLike(ctx context.Context, actorID, noteID uint) (*models.Like, error) {
	if actorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}
	if _, err := s.noteRepo.GetByID(ctx, noteID, 0); err != nil {
		return nil, err
	}

	like := &models.Like{
		NoteID: noteID,
		UserID: actorID,
	}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewDuplicateError("You already liked this note")
		}
		return nil, err
	}

	return s.likeRepo.GetByID(ctx, like.ID)
}

// ListLikes returns the note's likes.
func (s *LikeService) ListLikes(ctx context.Context, actorID, noteID uint) ([]*models.Like, error) {
	if actorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}
	if _, err := s.noteRepo.GetByID(ctx, noteID, 0); err != nil {
		return nil, err
	}
	return s.likeRepo.ListByNote(ctx, noteID)
}

// DeleteLike removes the actor's own like.
func (s *LikeService) DeleteLike(ctx context.Context, actorID, likeID uint) error {
	like, err := s.likeRepo.GetByID(ctx, likeID)
	if err != nil {
		return err
	}
	if like.UserID != actorID {
		return models.NewForbiddenError("You can only remove your own likes")
	}
	return s.likeRepo.Delete(ctx, likeID)
}
