package repository

import (
	"context"
	"testing"
	"time"

	"taskhive/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListByNote_OldestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	note := &models.Note{Title: "discussed", Content: "c", OwnerID: alice.ID, IsPublic: true}
	require.NoError(t, db.Create(note).Error)

	first := &models.Comment{Content: "first", NoteID: note.ID, CommenterID: bob.ID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)

	second := &models.Comment{Content: "second", NoteID: note.ID, CommenterID: alice.ID}
	require.NoError(t, repo.Create(ctx, second))

	comments, err := repo.ListByNote(ctx, note.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content, "threads read top-down")
	assert.Equal(t, "second", comments[1].Content)
	assert.Equal(t, "bob", comments[0].Commenter.Username)
}

func TestCommentRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	note := &models.Note{Title: "discussed", Content: "c", OwnerID: alice.ID}
	require.NoError(t, db.Create(note).Error)

	comment := &models.Comment{Content: "gone", NoteID: note.ID, CommenterID: alice.ID}
	require.NoError(t, repo.Create(ctx, comment))
	require.NoError(t, repo.Delete(ctx, comment.ID))

	_, err := repo.GetByID(ctx, comment.ID)
	assert.Error(t, err)

	remaining, err := repo.ListByNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
