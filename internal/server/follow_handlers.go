package server

import (
	"github.com/gofiber/fiber/v2"

	"lumeo/internal/models"
)

type followRequest struct {
	FollowerID  uint `json:"followerId"`
	FollowingID uint `json:"followingId"`
}

// parseFollowRequest decodes a follow mutation body and pins the follower to
// the authenticated caller.
func parseFollowRequest(c *fiber.Ctx) (uint, uint, error) {
	var req followRequest
	if err := c.BodyParser(&req); err != nil {
		return 0, 0, models.NewValidationError("Invalid request body")
	}
	if req.FollowingID == 0 {
		return 0, 0, models.NewValidationError("followingId is required")
	}

	callerID := currentUserID(c)
	if req.FollowerID != 0 && req.FollowerID != callerID {
		return 0, 0, models.NewForbiddenError("You can only manage your own follows")
	}
	return callerID, req.FollowingID, nil
}

// FollowUser handles POST /api/follows
func (s *Server) FollowUser(c *fiber.Ctx) error {
	followerID, followingID, err := parseFollowRequest(c)
	if err != nil {
		return models.RespondError(c, err)
	}

	if err := s.followService.Follow(c.UserContext(), followerID, followingID); err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// UnfollowUser handles DELETE /api/follows
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	followerID, followingID, err := parseFollowRequest(c)
	if err != nil {
		return models.RespondError(c, err)
	}

	if err := s.followService.Unfollow(c.UserContext(), followerID, followingID); err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetFollowers handles GET /api/follows/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID, ok := parseUserID(c.Query("userId"))
	if !ok {
		userID = currentUserID(c)
	}
	page, limit := parsePage(c)

	follows, err := s.followService.Followers(c.UserContext(), userID, page, limit)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"follows": follows})
}

// GetFollowing handles GET /api/follows/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID, ok := parseUserID(c.Query("userId"))
	if !ok {
		userID = currentUserID(c)
	}
	page, limit := parsePage(c)

	follows, err := s.followService.Following(c.UserContext(), userID, page, limit)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"follows": follows})
}

// GetSuggestions handles GET /api/follows/suggestions
func (s *Server) GetSuggestions(c *fiber.Ctx) error {
	suggestions, err := s.followService.Suggestions(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"follows": suggestions})
}
