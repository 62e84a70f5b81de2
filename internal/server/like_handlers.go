package server

import (
	"taskhive/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateLike handles POST /api/notes/:id/likes. Liking the same note twice
// is rejected with DUPLICATE, not treated as a no-op.
func (s *Server) CreateLike(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	noteID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	like, err := s.likeService.CreateLike(ctx, userID, noteID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

// GetLikes handles GET /api/notes/:id/likes
func (s *Server) GetLikes(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	noteID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	likes, err := s.likeService.ListLikes(ctx, userID, noteID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(likes)
}

// DeleteLike handles DELETE /api/likes/:id
func (s *Server) DeleteLike(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	likeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.likeService.DeleteLike(ctx, userID, likeID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
