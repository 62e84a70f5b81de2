package service

import (
	"context"
	"strings"
	"testing"

	"taskhive/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_GetProfile(t *testing.T) {
	t.Parallel()

	t.Run("counts and following flag", func(t *testing.T) {
		t.Parallel()
		fr := noopFollowRepo()
		fr.countFollowersFn = func(_ context.Context, _ uint) (int64, error) { return 3, nil }
		fr.countFollowingFn = func(_ context.Context, _ uint) (int64, error) { return 7, nil }
		fr.getFn = func(_ context.Context, followerID, followingID uint) (*models.Follow, error) {
			assert.Equal(t, uint(1), followerID)
			assert.Equal(t, uint(2), followingID)
			return &models.Follow{ID: 4, FollowerID: followerID, FollowingID: followingID}, nil
		}

		svc := NewUserService(noopUserRepo(), fr)
		profile, err := svc.GetProfile(context.Background(), 1, "alice")
		require.NoError(t, err)
		assert.Equal(t, 3, profile.FollowersCount)
		assert.Equal(t, 7, profile.FollowingCount)
		assert.True(t, profile.IsFollowing)
	})

	t.Run("anonymous actor never shows following", func(t *testing.T) {
		t.Parallel()
		fr := noopFollowRepo()
		fr.getFn = func(_ context.Context, _, _ uint) (*models.Follow, error) {
			t.Fatal("edge lookup must be skipped for anonymous actors")
			return nil, nil
		}
		svc := NewUserService(noopUserRepo(), fr)
		profile, err := svc.GetProfile(context.Background(), 0, "alice")
		require.NoError(t, err)
		assert.False(t, profile.IsFollowing)
	})

	t.Run("unknown username surfaces as not found", func(t *testing.T) {
		t.Parallel()
		ur := noopUserRepo()
		ur.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
			return nil, models.NewNotFoundError("User", username)
		}
		svc := NewUserService(ur, noopFollowRepo())
		_, err := svc.GetProfile(context.Background(), 1, "ghost")
		assertNotFoundError(t, err)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("patches bio and avatar", func(t *testing.T) {
		t.Parallel()
		ur := noopUserRepo()
		ur.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Bio: "old bio", Avatar: "old.png"}, nil
		}
		svc := NewUserService(ur, noopFollowRepo())
		bio := "new bio"
		user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{ActorID: 1, Bio: &bio})
		require.NoError(t, err)
		assert.Equal(t, "new bio", user.Bio)
		assert.Equal(t, "old.png", user.Avatar, "omitted fields stay unchanged")
	})

	t.Run("bio too long rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), noopFollowRepo())
		bio := strings.Repeat("x", 501)
		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{ActorID: 1, Bio: &bio})
		assertValidationError(t, err)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("CorrectHorse1!"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("wrong current password is a precondition failure", func(t *testing.T) {
		t.Parallel()
		ur := noopUserRepo()
		ur.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Password: string(hashed)}, nil
		}
		svc := NewUserService(ur, noopFollowRepo())
		err := svc.ChangePassword(context.Background(), 1, "WrongGuess9$", "NewPassword12!")
		assertAppError(t, err, models.CodePreconditionFailed)
	})

	t.Run("correct current password rehashes and saves", func(t *testing.T) {
		t.Parallel()
		var saved *models.User
		ur := noopUserRepo()
		ur.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Password: string(hashed)}, nil
		}
		ur.updateFn = func(_ context.Context, user *models.User) error {
			saved = user
			return nil
		}
		svc := NewUserService(ur, noopFollowRepo())
		require.NoError(t, svc.ChangePassword(context.Background(), 1, "CorrectHorse1!", "NewPassword12!"))
		require.NotNil(t, saved)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("NewPassword12!")))
	})
}

func TestUserService_GetMe_AttachesCounts(t *testing.T) {
	t.Parallel()

	fr := noopFollowRepo()
	fr.countFollowersFn = func(_ context.Context, _ uint) (int64, error) { return 2, nil }
	fr.countFollowingFn = func(_ context.Context, _ uint) (int64, error) { return 5, nil }
	svc := NewUserService(noopUserRepo(), fr)
	user, err := svc.GetMe(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, user.FollowersCount)
	assert.Equal(t, 5, user.FollowingCount)
}
