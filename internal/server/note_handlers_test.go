package server

import (
	"fmt"
	"net/http"
	"testing"

	"taskhive/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNote(t *testing.T) {
	t.Parallel()

	t.Run("creates a note with tags", func(t *testing.T) {
		t.Parallel()
		s, app := newTestServer(t)
		alice, token := createUserWithToken(t, s, "alice")

		resp := doJSON(t, app, http.MethodPost, "/api/notes", token, map[string]any{
			"title":     "Study GORM",
			"content":   "associations and preloads",
			"is_public": true,
			"tags":      []string{"go", "db"},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var note models.Note
		decodeJSON(t, resp, &note)
		assert.Equal(t, alice.ID, note.OwnerID)
		assert.True(t, note.IsPublic)
		assert.Len(t, note.Tags, 2)
	})

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()
		_, app := newTestServer(t)
		resp := doJSON(t, app, http.MethodPost, "/api/notes", "", map[string]any{
			"title": "T", "content": "c",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing content rejected", func(t *testing.T) {
		t.Parallel()
		s, app := newTestServer(t)
		_, token := createUserWithToken(t, s, "alice")
		resp := doJSON(t, app, http.MethodPost, "/api/notes", token, map[string]any{
			"title": "T",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetNote_Visibility(t *testing.T) {
	t.Parallel()

	s, app := newTestServer(t)
	_, aliceToken := createUserWithToken(t, s, "alice")
	_, bobToken := createUserWithToken(t, s, "bob")

	createNote := func(token, title string, public bool) uint {
		resp := doJSON(t, app, http.MethodPost, "/api/notes", token, map[string]any{
			"title": title, "content": "c", "is_public": public,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var note models.Note
		decodeJSON(t, resp, &note)
		return note.ID
	}

	publicID := createNote(aliceToken, "public note", true)
	privateID := createNote(aliceToken, "private note", false)

	t.Run("public note readable without a token", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, noteURL(publicID), "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("private note invisible to others", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, noteURL(privateID), bobToken, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode,
			"existence of a private note must not leak")
	})

	t.Run("private note readable by its owner", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, noteURL(privateID), aliceToken, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("listing shows own plus public", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/notes", bobToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var notes []models.Note
		decodeJSON(t, resp, &notes)
		require.Len(t, notes, 1)
		assert.Equal(t, "public note", notes[0].Title)
	})
}

func noteURL(id uint) string {
	return fmt.Sprintf("/api/notes/%d", id)
}

func TestUpdateNote_Ownership(t *testing.T) {
	t.Parallel()

	s, app := newTestServer(t)
	_, aliceToken := createUserWithToken(t, s, "alice")
	_, bobToken := createUserWithToken(t, s, "bob")

	resp := doJSON(t, app, http.MethodPost, "/api/notes", aliceToken, map[string]any{
		"title": "original", "content": "c", "is_public": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var note models.Note
	decodeJSON(t, resp, &note)

	t.Run("non-owner forbidden", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, noteURL(note.ID), bobToken, map[string]any{
			"title": "hijacked",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("owner updates", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, noteURL(note.ID), aliceToken, map[string]any{
			"title": "renamed",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var updated models.Note
		decodeJSON(t, resp, &updated)
		assert.Equal(t, "renamed", updated.Title)
		assert.Equal(t, "c", updated.Content, "content untouched by a title-only patch")
	})
}

func TestDeleteNote(t *testing.T) {
	t.Parallel()

	s, app := newTestServer(t)
	_, token := createUserWithToken(t, s, "alice")

	resp := doJSON(t, app, http.MethodPost, "/api/notes", token, map[string]any{
		"title": "doomed", "content": "c",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var note models.Note
	decodeJSON(t, resp, &note)

	del := doJSON(t, app, http.MethodDelete, noteURL(note.ID), token, nil)
	defer func() { _ = del.Body.Close() }()
	require.Equal(t, http.StatusNoContent, del.StatusCode)

	get := doJSON(t, app, http.MethodGet, noteURL(note.ID), token, nil)
	defer func() { _ = get.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, get.StatusCode)
}

func TestGetFeed(t *testing.T) {
	t.Parallel()

	s, app := newTestServer(t)
	_, aliceToken := createUserWithToken(t, s, "alice")
	_, bobToken := createUserWithToken(t, s, "bob")

	// bob publishes one public and one private note
	resp := doJSON(t, app, http.MethodPost, "/api/notes", bobToken, map[string]any{
		"title": "bob public", "content": "c", "is_public": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/notes", bobToken, map[string]any{
		"title": "bob private", "content": "c",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	t.Run("empty neighborhood yields empty feed", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/notes/feed", aliceToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var notes []models.Note
		decodeJSON(t, resp, &notes)
		assert.Empty(t, notes)
	})

	t.Run("followed user's public notes appear", func(t *testing.T) {
		follow := doJSON(t, app, http.MethodPost, "/api/follows/bob", aliceToken, nil)
		defer func() { _ = follow.Body.Close() }()
		require.Equal(t, http.StatusCreated, follow.StatusCode)

		resp := doJSON(t, app, http.MethodGet, "/api/notes/feed", aliceToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var notes []models.Note
		decodeJSON(t, resp, &notes)
		require.Len(t, notes, 1)
		assert.Equal(t, "bob public", notes[0].Title)
	})

	t.Run("feed requires authentication", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/notes/feed", "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"the feed route must not fall through to the public note route")
	})
}
