package server

import (
	"taskhive/internal/models"
	"taskhive/internal/service"
	"taskhive/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetMe(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:username. Follower counts are
// recomputed at read time; IsFollowing reflects the requesting user when
// a valid token is presented.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	username := c.Params("username")
	actorID, _ := s.optionalUserID(c)

	profile, err := s.userService.GetProfile(ctx, actorID, username)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Bio    *string `json:"bio"`
		Avatar *string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(ctx, service.UpdateProfileInput{
		ActorID: userID,
		Bio:     req.Bio,
		Avatar:  req.Avatar,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(user)
}

// ChangePassword handles PUT /api/users/me/password. The current password
// must be presented; a wrong one fails the precondition rather than the
// authentication, since the caller already holds a valid token.
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidatePassword(req.NewPassword); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	if err := s.userService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Password updated"})
}
