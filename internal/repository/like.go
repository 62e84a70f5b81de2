// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"taskhive/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	GetByID(ctx context.Context, id uint) (*models.Like, error)
	ListByNote(ctx context.Context, noteID uint) ([]*models.Like, error)
	Delete(ctx context.Context, id uint) error
}

// likeRepository implements LikeRepository
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts the like. A concurrent duplicate insert loses the race at the
// (note_id, user_id) unique index and surfaces as gorm.ErrDuplicatedKey, which
// the service layer reports as DUPLICATE.
func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) GetByID(ctx context.Context, id uint) (*models.Like, error) {
	var like models.Like
	if err := r.db.WithContext(ctx).Preload("User").First(&like, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Like", id)
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) ListByNote(ctx context.Context, noteID uint) ([]*models.Like, error) {
	var likes []*models.Like
	err := r.db.WithContext(ctx).Preload("User").Where("note_id = ?", noteID).Order("created_at desc").Find(&likes).Error
	return likes, err
}

func (r *likeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Like{}, id).Error
}
