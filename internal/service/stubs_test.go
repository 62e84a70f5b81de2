package service

import (
	"context"
	"errors"
	"testing"

	"taskhive/internal/models"
	"taskhive/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noteRepoStub is a stub for repository.NoteRepository.
type noteRepoStub struct {
	createFn      func(context.Context, *models.Note) error
	getByIDFn     func(context.Context, uint, uint) (*models.Note, error)
	listVisibleFn func(context.Context, uint, repository.NoteFilter) ([]*models.Note, error)
	listFeedFn    func(context.Context, []uint, int, int, uint) ([]*models.Note, error)
	updateFn      func(context.Context, *models.Note) error
	replaceTagsFn func(context.Context, *models.Note, []models.Tag) error
	deleteFn      func(context.Context, uint) error
}

func (s *noteRepoStub) Create(ctx context.Context, note *models.Note) error {
	return s.createFn(ctx, note)
}
func (s *noteRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Note, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *noteRepoStub) ListVisible(ctx context.Context, actorID uint, f repository.NoteFilter) ([]*models.Note, error) {
	return s.listVisibleFn(ctx, actorID, f)
}
func (s *noteRepoStub) ListFeed(ctx context.Context, ownerIDs []uint, limit, offset int, currentUserID uint) ([]*models.Note, error) {
	return s.listFeedFn(ctx, ownerIDs, limit, offset, currentUserID)
}
func (s *noteRepoStub) Update(ctx context.Context, note *models.Note) error {
	return s.updateFn(ctx, note)
}
func (s *noteRepoStub) ReplaceTags(ctx context.Context, note *models.Note, tags []models.Tag) error {
	return s.replaceTagsFn(ctx, note, tags)
}
func (s *noteRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopNoteRepo() *noteRepoStub {
	return &noteRepoStub{
		createFn: func(_ context.Context, _ *models.Note) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Note, error) {
			return &models.Note{ID: id, IsPublic: true, OwnerID: 1}, nil
		},
		listVisibleFn: func(_ context.Context, _ uint, _ repository.NoteFilter) ([]*models.Note, error) { return nil, nil },
		listFeedFn:    func(_ context.Context, _ []uint, _, _ int, _ uint) ([]*models.Note, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ *models.Note) error { return nil },
		replaceTagsFn: func(_ context.Context, _ *models.Note, _ []models.Tag) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

// taskRepoStub is a stub for repository.TaskRepository.
type taskRepoStub struct {
	createFn      func(context.Context, *models.Task) error
	getByIDFn     func(context.Context, uint) (*models.Task, error)
	listByOwnerFn func(context.Context, uint, repository.TaskFilter) ([]*models.Task, error)
	updateFn      func(context.Context, *models.Task) error
	deleteFn      func(context.Context, uint) error
}

func (s *taskRepoStub) Create(ctx context.Context, task *models.Task) error {
	return s.createFn(ctx, task)
}
func (s *taskRepoStub) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	return s.getByIDFn(ctx, id)
}
func (s *taskRepoStub) ListByOwner(ctx context.Context, ownerID uint, f repository.TaskFilter) ([]*models.Task, error) {
	return s.listByOwnerFn(ctx, ownerID, f)
}
func (s *taskRepoStub) Update(ctx context.Context, task *models.Task) error {
	return s.updateFn(ctx, task)
}
func (s *taskRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopTaskRepo() *taskRepoStub {
	return &taskRepoStub{
		createFn: func(_ context.Context, _ *models.Task) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Task, error) {
			return &models.Task{ID: id, OwnerID: 1}, nil
		},
		listByOwnerFn: func(_ context.Context, _ uint, _ repository.TaskFilter) ([]*models.Task, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ *models.Task) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

// tagRepoStub is a stub for repository.TagRepository.
type tagRepoStub struct {
	createFn      func(context.Context, *models.Tag) error
	getByIDFn     func(context.Context, uint) (*models.Tag, error)
	getOrCreateFn func(context.Context, uint, string) (*models.Tag, error)
	listByOwnerFn func(context.Context, uint) ([]*models.Tag, error)
	deleteFn      func(context.Context, uint) error
}

func (s *tagRepoStub) Create(ctx context.Context, tag *models.Tag) error {
	return s.createFn(ctx, tag)
}
func (s *tagRepoStub) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	return s.getByIDFn(ctx, id)
}
func (s *tagRepoStub) GetOrCreate(ctx context.Context, ownerID uint, name string) (*models.Tag, error) {
	return s.getOrCreateFn(ctx, ownerID, name)
}
func (s *tagRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Tag, error) {
	return s.listByOwnerFn(ctx, ownerID)
}
func (s *tagRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopTagRepo() *tagRepoStub {
	return &tagRepoStub{
		createFn: func(_ context.Context, _ *models.Tag) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Tag, error) {
			return &models.Tag{ID: id, OwnerID: 1}, nil
		},
		getOrCreateFn: func(_ context.Context, ownerID uint, name string) (*models.Tag, error) {
			return &models.Tag{ID: 1, OwnerID: ownerID, Name: name}, nil
		},
		listByOwnerFn: func(_ context.Context, _ uint) ([]*models.Tag, error) { return nil, nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByNoteFn func(context.Context, uint) ([]*models.Comment, error)
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByNote(ctx context.Context, noteID uint) ([]*models.Comment, error) {
	return s.listByNoteFn(ctx, noteID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, CommenterID: 1}, nil
		},
		listByNoteFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	createFn     func(context.Context, *models.Like) error
	getByIDFn    func(context.Context, uint) (*models.Like, error)
	listByNoteFn func(context.Context, uint) ([]*models.Like, error)
	deleteFn     func(context.Context, uint) error
}

func (s *likeRepoStub) Create(ctx context.Context, like *models.Like) error {
	return s.createFn(ctx, like)
}
func (s *likeRepoStub) GetByID(ctx context.Context, id uint) (*models.Like, error) {
	return s.getByIDFn(ctx, id)
}
func (s *likeRepoStub) ListByNote(ctx context.Context, noteID uint) ([]*models.Like, error) {
	return s.listByNoteFn(ctx, noteID)
}
func (s *likeRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		createFn: func(_ context.Context, _ *models.Like) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Like, error) {
			return &models.Like{ID: id, UserID: 1}, nil
		},
		listByNoteFn: func(_ context.Context, _ uint) ([]*models.Like, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	createFn         func(context.Context, *models.Follow) error
	getFn            func(context.Context, uint, uint) (*models.Follow, error)
	deleteFn         func(context.Context, uint, uint) (int64, error)
	followersFn      func(context.Context, uint) ([]models.User, error)
	followingFn      func(context.Context, uint) ([]models.User, error)
	countFollowersFn func(context.Context, uint) (int64, error)
	countFollowingFn func(context.Context, uint) (int64, error)
	neighborIDsFn    func(context.Context, uint) ([]uint, error)
	followingIDSetFn func(context.Context, uint, []uint) (map[uint]bool, error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) Get(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	return s.getFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followingID uint) (int64, error) {
	return s.deleteFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followersFn(ctx, userID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followingFn(ctx, userID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}
func (s *followRepoStub) NeighborIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.neighborIDsFn(ctx, userID)
}
func (s *followRepoStub) FollowingIDSet(ctx context.Context, followerID uint, candidateIDs []uint) (map[uint]bool, error) {
	return s.followingIDSetFn(ctx, followerID, candidateIDs)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:         func(_ context.Context, _ *models.Follow) error { return nil },
		getFn:            func(_ context.Context, _, _ uint) (*models.Follow, error) { return nil, nil },
		deleteFn:         func(_ context.Context, _, _ uint) (int64, error) { return 1, nil },
		followersFn:      func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		followingFn:      func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		countFollowersFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countFollowingFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		neighborIDsFn:    func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		followingIDSetFn: func(_ context.Context, _ uint, _ []uint) (map[uint]bool, error) {
			return map[uint]bool{}, nil
		},
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "someone"}, nil
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			return &models.User{ID: 2, Username: username}, nil
		},
		updateFn: func(_ context.Context, _ *models.User) error { return nil },
	}
}

// assertAppError asserts that err is an AppError with the given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeValidation)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeNotFound)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeForbidden)
}

func assertUnauthenticatedError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeUnauthenticated)
}
