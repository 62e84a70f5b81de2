// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"taskhive/internal/models"

	"gorm.io/gorm"
)

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetOrCreate(ctx context.Context, ownerID uint, name string) (*models.Tag, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*models.Tag, error)
	Delete(ctx context.Context, id uint) error
}

// tagRepository implements TagRepository
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag", id)
		}
		return nil, err
	}
	return &tag, nil
}

// GetOrCreate returns the owner's tag with the given name, creating it if absent.
func (r *tagRepository) GetOrCreate(ctx context.Context, ownerID uint, name string) (*models.Tag, error) {
	tag := models.Tag{OwnerID: ownerID, Name: name}
	err := r.db.WithContext(ctx).
		Where(models.Tag{OwnerID: ownerID, Name: name}).
		FirstOrCreate(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("name").Find(&tags).Error
	return tags, err
}

// Delete removes the tag and detaches it from any notes. Notes themselves
// are untouched.
func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM note_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}
