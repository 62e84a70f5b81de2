package server

import (
	"taskhive/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTag handles POST /api/tags. Creating a tag that already exists for
// the actor returns the existing tag rather than an error.
func (s *Server) CreateTag(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	tag, err := s.tagService.CreateTag(ctx, userID, req.Name)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tag)
}

// GetTags handles GET /api/tags
func (s *Server) GetTags(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	tags, err := s.tagService.ListTags(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(tags)
}

// GetTag handles GET /api/tags/:id
func (s *Server) GetTag(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	tagID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.tagService.GetTag(ctx, userID, tagID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(tag)
}

// DeleteTag handles DELETE /api/tags/:id. The tag is detached from every
// note that carries it before removal.
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	tagID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tagService.DeleteTag(ctx, userID, tagID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
