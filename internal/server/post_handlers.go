package server

import (
	"encoding/json"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"lumeo/internal/models"
)

// readMultipartFile returns the bytes of the first file in the form.
func readMultipartFile(form *multipart.Form) ([]byte, error) {
	for _, headers := range form.File {
		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				return nil, models.NewValidationError("Could not read uploaded file")
			}
			defer file.Close()

			content, err := io.ReadAll(file)
			if err != nil {
				return nil, models.NewValidationError("Could not read uploaded file")
			}
			return content, nil
		}
	}
	return nil, nil
}

// CreatePost handles POST /api/posts. The body is multipart: an image file
// plus a "post_data" JSON part carrying the caption.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Expected multipart form data"))
	}

	var postData struct {
		Caption string `json:"caption"`
	}
	if values := form.Value["post_data"]; len(values) > 0 {
		if err := json.Unmarshal([]byte(values[0]), &postData); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid post_data"))
		}
	}

	content, err := readMultipartFile(form)
	if err != nil {
		return models.RespondError(c, err)
	}
	if content == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Post image is required"))
	}

	imageURL, err := s.images.Save(content)
	if err != nil {
		return models.RespondError(c, err)
	}

	post, err := s.postService.CreatePost(c.UserContext(), currentUserID(c), postData.Caption, imageURL)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetFeed handles GET /api/posts/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page, limit := parsePage(c)

	posts, err := s.postService.Feed(c.UserContext(), currentUserID(c), page, limit)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// GetUserPosts handles GET /api/posts/user/:userId
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	ownerID, ok := parseUserID(c.Params("userId"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}
	page, limit := parsePage(c)

	posts, err := s.postService.PostsByUser(c.UserContext(), ownerID, currentUserID(c), page, limit)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// GetPost handles GET /api/posts/:postId
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, ok := parsePostID(c.Params("postId"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	post, err := s.postService.GetPost(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, ok := parsePostID(c.Params("postId"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	if err := s.postService.DeletePost(c.UserContext(), postID, currentUserID(c)); err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// LikePost handles POST /api/posts/:postId/likes
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, ok := parsePostID(c.Params("postId"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	if err := s.postService.AddLike(c.UserContext(), postID, currentUserID(c)); err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// UnlikePost handles DELETE /api/posts/:postId/likes
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, ok := parsePostID(c.Params("postId"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	if err := s.postService.RemoveLike(c.UserContext(), postID, currentUserID(c)); err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
