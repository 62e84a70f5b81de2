package service

import (
	"context"

	"taskhive/internal/models"
	"taskhive/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides profile and account business logic.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// UpdateProfileInput is a patch for the actor's own profile.
type UpdateProfileInput struct {
	ActorID uint
	Bio     *string
	Avatar  *string
}

// GetProfile returns the named user's public profile with follower counts
// recomputed at read time. IsFollowing reflects whether the requesting actor
// follows the profiled user.
func (s *UserService) GetProfile(ctx context.Context, actorID uint, username string) (*models.Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if actorID != 0 && actorID != user.ID {
		edge, err := s.followRepo.Get(ctx, actorID, user.ID)
		if err != nil {
			return nil, err
		}
		isFollowing = edge != nil
	}

	return &models.Profile{
		ID:             user.ID,
		Username:       user.Username,
		Bio:            user.Bio,
		Avatar:         user.Avatar,
		FollowersCount: int(followers),
		FollowingCount: int(following),
		IsFollowing:    isFollowing,
		CreatedAt:      user.CreatedAt,
	}, nil
}

// GetMe returns the actor's own account with follower counts attached.
func (s *UserService) GetMe(ctx context.Context, actorID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.FollowersCount = int(followers)
	user.FollowingCount = int(following)
	return user, nil
}

// UpdateProfile applies a patch to the actor's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.ActorID)
	if err != nil {
		return nil, err
	}

	if in.Bio != nil {
		if len(*in.Bio) > 500 {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = *in.Bio
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the actor's password after verifying the old one.
// A wrong old password is a precondition failure, not an authentication error:
// the actor holds a valid session but the claimed prior state does not match.
func (s *UserService) ChangePassword(ctx context.Context, actorID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return models.NewPreconditionFailedError("Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.Password = string(hashed)
	return s.userRepo.Update(ctx, user)
}
