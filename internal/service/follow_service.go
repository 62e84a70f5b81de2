package service

import (
	"context"
	"errors"

	"taskhive/internal/models"
	"taskhive/internal/repository"

	"gorm.io/gorm"
)

// FollowService manages the follow graph. Follow creation is idempotent: a
// duplicate follow returns the existing edge without error. Unfollowing a
// non-followed user is a precondition failure, never silently ignored, so
// client-side state bugs surface instead of hiding.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates an edge from the actor to the named user. Following a user
// twice returns the existing edge; a concurrent duplicate create loses the
// race at the unique index and resolves the same way.
func (s *FollowService) Follow(ctx context.Context, actorID uint, targetUsername string) (*models.Follow, error) {
	if actorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}

	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}
	if target.ID == actorID {
		return nil, models.NewSelfReferenceError("You cannot follow yourself")
	}

	follow := &models.Follow{
		FollowerID:  actorID,
		FollowingID: target.ID,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.existingEdge(ctx, actorID, target.ID)
		}
		return nil, err
	}
	return follow, nil
}

func (s *FollowService) existingEdge(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	existing, err := s.followRepo.Get(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		// lost a race against a concurrent unfollow
		return nil, models.NewPreconditionFailedError("Follow state changed, retry")
	}
	return existing, nil
}

// Unfollow removes the actor's edge to the named user. Unfollowing someone
// the actor does not follow fails with PRECONDITION_FAILED and changes nothing.
func (s *FollowService) Unfollow(ctx context.Context, actorID uint, targetUsername string) error {
	if actorID == 0 {
		return models.NewUnauthenticatedError("Authentication required")
	}

	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	affected, err := s.followRepo.Delete(ctx, actorID, target.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.NewPreconditionFailedError("You are not following this user")
	}
	return nil
}

// Followers lists the users following the named user. Each row carries a
// followed_back flag computed from the requesting actor's perspective.
func (s *FollowService) Followers(ctx context.Context, actorID uint, username string) ([]models.FollowUser, error) {
	return s.listEdgeUsers(ctx, actorID, username, s.followRepo.Followers)
}

// Following lists the users the named user follows, annotated the same way.
func (s *FollowService) Following(ctx context.Context, actorID uint, username string) ([]models.FollowUser, error) {
	return s.listEdgeUsers(ctx, actorID, username, s.followRepo.Following)
}

func (s *FollowService) listEdgeUsers(
	ctx context.Context,
	actorID uint,
	username string,
	fetch func(context.Context, uint) ([]models.User, error),
) ([]models.FollowUser, error) {
	if actorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	users, err := fetch(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	followedBack, err := s.followRepo.FollowingIDSet(ctx, actorID, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]models.FollowUser, len(users))
	for i, u := range users {
		rows[i] = models.FollowUser{
			ID:           u.ID,
			Username:     u.Username,
			Avatar:       u.Avatar,
			FollowedBack: followedBack[u.ID],
		}
	}
	return rows, nil
}
