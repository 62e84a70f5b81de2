package server

import (
	"taskhive/internal/models"
	"taskhive/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateNote handles POST /api/notes
func (s *Server) CreateNote(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		IsPublic bool     `json:"is_public"`
		Tags     []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	note, err := s.noteService.CreateNote(ctx, service.CreateNoteInput{
		ActorID:  userID,
		Title:    req.Title,
		Content:  req.Content,
		IsPublic: req.IsPublic,
		TagNames: req.Tags,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(note)
}

// GetNotes handles GET /api/notes. The listing contains the actor's own
// notes plus every other user's public notes.
func (s *Server) GetNotes(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	notes, err := s.noteService.ListNotes(ctx, service.ListNotesInput{
		ActorID:     userID,
		TagName:     c.Query("tag"),
		TitleSearch: c.Query("search"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(notes)
}

// GetFeed handles GET /api/notes/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	notes, err := s.noteService.Feed(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(notes)
}

// GetNote handles GET /api/notes/:id. Public notes are readable without
// authentication; private notes only by their owner.
func (s *Server) GetNote(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, _ := s.optionalUserID(c)

	note, err := s.noteService.GetNote(ctx, userID, id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(note)
}

// UpdateNote handles PUT /api/notes/:id
func (s *Server) UpdateNote(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	noteID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title    *string   `json:"title"`
		Content  *string   `json:"content"`
		IsPublic *bool     `json:"is_public"`
		Tags     *[]string `json:"tags"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	note, err := s.noteService.UpdateNote(ctx, service.UpdateNoteInput{
		ActorID:  userID,
		NoteID:   noteID,
		Title:    req.Title,
		Content:  req.Content,
		IsPublic: req.IsPublic,
		TagNames: req.Tags,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(note)
}

// DeleteNote handles DELETE /api/notes/:id
func (s *Server) DeleteNote(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	noteID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.noteService.DeleteNote(ctx, userID, noteID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
