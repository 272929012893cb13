package server

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"lumeo/internal/models"
)

// GetOwnProfile handles GET /api/profile
func (s *Server) GetOwnProfile(c *fiber.Ctx) error {
	callerID := currentUserID(c)

	profile, err := s.userService.Profile(c.UserContext(), callerID, callerID)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(profile)
}

// GetProfile handles GET /api/profile/:userId
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, ok := parseUserID(c.Params("userId"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	profile, err := s.userService.Profile(c.UserContext(), userID, currentUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(profile)
}

// UpdateProfile handles POST /api/profile. The body is multipart: an
// optional avatar file plus a "profile_data" JSON part.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Expected multipart form data"))
	}

	var profileData struct {
		Name string `json:"name"`
		Bio  string `json:"bio"`
	}
	if values := form.Value["profile_data"]; len(values) > 0 {
		if err := json.Unmarshal([]byte(values[0]), &profileData); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid profile_data"))
		}
	}

	imageURL := ""
	content, err := readMultipartFile(form)
	if err != nil {
		return models.RespondError(c, err)
	}
	if content != nil {
		imageURL, err = s.images.Save(content)
		if err != nil {
			return models.RespondError(c, err)
		}
	}

	profile, err := s.userService.UpdateProfile(c.UserContext(), currentUserID(c),
		profileData.Name, profileData.Bio, imageURL)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(profile)
}
