package service

import (
	"context"

	"taskhive/internal/models"
	"taskhive/internal/repository"
)

const maxCommentLen = 10000

// CommentService enforces comment rules. Comments are immutable once posted
// (no update operation exists, deliberately, to keep discussion threads
// truthful); only the commenter may delete one. Reading comments requires
// authentication but note-level visibility is not re-checked, a deliberate
// simplification.
type CommentService struct {
	commentRepo repository.CommentRepository
	noteRepo    repository.NoteRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, noteRepo repository.NoteRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		noteRepo:    noteRepo,
	}
}

// CreateCommentInput carries the fields for a new comment. The commenter is
// always the acting user.
type CreateCommentInput struct {
	ActorID uint
	NoteID  uint
	Content string
}

// CreateComment posts a comment on an existing note.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.ActorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}
	if _, err := s.noteRepo.GetByID(ctx, in.NoteID, 0); err != nil {
		return nil, err
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment := &models.Comment{
		Content:     in.Content,
		NoteID:      in.NoteID,
		CommenterID: in.ActorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the note's comments, oldest first.
func (s *CommentService) ListComments(ctx context.Context, actorID, noteID uint) ([]*models.Comment, error) {
	if actorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}
	if _, err := s.noteRepo.GetByID(ctx, noteID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByNote(ctx, noteID)
}

// DeleteComment deletes the actor's own comment.
func (s *CommentService) DeleteComment(ctx context.Context, actorID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.CommenterID != actorID {
		return models.NewForbiddenError("You can only delete your own comments")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
