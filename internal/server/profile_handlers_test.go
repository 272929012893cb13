package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumeo/internal/models"
)

func TestGetOwnProfile(t *testing.T) {
	_, app, _ := newTestServer(t)

	alice := signupUser(t, app, "alice", "alice@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/profile", nil, alice.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile models.Profile
	decodeBody(t, resp, &profile)
	assert.Equal(t, alice.ID, profile.ID)
	assert.True(t, profile.IsOwnProfile)
	assert.False(t, profile.IsFollowing)
	assert.Equal(t, models.DefaultBio, profile.Bio)
}

func TestGetProfileOfFollowedUser(t *testing.T) {
	_, app, _ := newTestServer(t)

	alice := signupUser(t, app, "alice", "alice@example.com")
	bob := signupUser(t, app, "bob", "bob@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/follows", followBody(t, bob.ID), alice.Token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/profile/%d", bob.ID), nil, alice.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile models.Profile
	decodeBody(t, resp, &profile)
	assert.Equal(t, bob.ID, profile.ID)
	assert.True(t, profile.IsFollowing)
	assert.False(t, profile.IsOwnProfile)
	assert.Equal(t, 1, profile.FollowersCount)
}

func TestGetProfileMissingUser(t *testing.T) {
	_, app, _ := newTestServer(t)

	alice := signupUser(t, app, "alice", "alice@example.com")
	resp := doJSON(t, app, http.MethodGet, "/api/profile/9999", nil, alice.Token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdateProfileWithAvatar(t *testing.T) {
	_, app, _ := newTestServer(t)

	alice := signupUser(t, app, "alice", "alice@example.com")

	resp := multipartPost(t, app, "/api/profile", alice.Token, "profile_data",
		`{"name":"alice2","bio":"new bio"}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile models.Profile
	decodeBody(t, resp, &profile)
	assert.Equal(t, "alice2", profile.Name)
	assert.Equal(t, "new bio", profile.Bio)
	assert.True(t, strings.HasSuffix(profile.ImageURL, ".webp"))
}

func TestUpdateProfileTextOnly(t *testing.T) {
	_, app, _ := newTestServer(t)

	alice := signupUser(t, app, "alice", "alice@example.com")

	resp := multipartPost(t, app, "/api/profile", alice.Token, "profile_data",
		`{"bio":"only the bio"}`, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile models.Profile
	decodeBody(t, resp, &profile)
	assert.Equal(t, "alice", profile.Name)
	assert.Equal(t, "only the bio", profile.Bio)
	assert.Empty(t, profile.ImageURL)
}
