package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lumeo/internal/config"
	"lumeo/internal/models"
	"lumeo/internal/testutil"
)

func testServerConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:         "8080",
		Env:          "test",
		JWTSecret:    "test-secret-key",
		JWTIssuer:    "lumeo-api",
		JWTAudience:  "lumeo-client",
		MediaDir:     t.TempDir(),
		MediaBaseURL: "/media",
	}
}

func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()
	os.Setenv("APP_ENV", "test")

	db := testutil.NewTestDB(t)
	s := NewServerWithDeps(testServerConfig(t), db, nil)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}

// signupUser registers an account through the API and returns the response.
func signupUser(t *testing.T, app *fiber.App, name, email string) *models.AuthUser {
	t.Helper()

	body, _ := json.Marshal(fiber.Map{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", body, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.AuthUser
	decodeBody(t, resp, &user)
	return &user
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body []byte, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
