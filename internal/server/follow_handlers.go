package server

import (
	"taskhive/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/follows/:username. Following a user who is
// already followed returns the existing edge; following yourself is rejected.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	follow, err := s.followService.Follow(ctx, userID, username)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(follow)
}

// UnfollowUser handles DELETE /api/follows/:username
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Unfollow(ctx, userID, username); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFollowers handles GET /api/follows/:username/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	followers, err := s.followService.Followers(ctx, userID, username)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(followers)
}

// GetFollowing handles GET /api/follows/:username/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	following, err := s.followService.Following(ctx, userID, username)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(following)
}
