package server

import (
	"github.com/gofiber/fiber/v2"

	"lumeo/internal/models"
)

// CreateComment handles POST /api/posts/:postId/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, ok := parsePostID(c.Params("postId"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.AddComment(c.UserContext(), postID, currentUserID(c), req.Body)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/posts/:postId/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, ok := parsePostID(c.Params("postId"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}
	page, limit := parsePage(c)

	comments, err := s.commentService.Comments(c.UserContext(), postID, page, limit)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"comments": comments})
}

// DeleteComment handles DELETE /api/posts/:postId/comments/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, ok := parseUserID(c.Params("commentId"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid comment ID"))
	}

	if err := s.commentService.DeleteComment(c.UserContext(), commentID, currentUserID(c)); err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
