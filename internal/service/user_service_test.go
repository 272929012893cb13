package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumeo/internal/auth"
	"lumeo/internal/config"
	"lumeo/internal/models"
)

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager(&config.Config{
		JWTSecret:   "test-secret-key",
		JWTIssuer:   "lumeo-api",
		JWTAudience: "lumeo-client",
	})
}

func TestSignupValidation(t *testing.T) {
	svc := NewUserService(noopUserRepo(), noopFollowRepo(), testTokens())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "", "alice@example.com", "password123")
	assertAppErrorCode(t, err, models.CodeValidation)

	_, err = svc.Signup(ctx, "alice", "not-an-email", "password123")
	assertAppErrorCode(t, err, models.CodeValidation)

	_, err = svc.Signup(ctx, "alice", "alice@example.com", "short")
	assertAppErrorCode(t, err, models.CodeValidation)
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := noopUserRepo()
	users.getByEmailFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 1, Email: "alice@example.com"}, nil
	}
	svc := NewUserService(users, noopFollowRepo(), testTokens())

	_, err := svc.Signup(context.Background(), "alice", "alice@example.com", "password123")
	assertAppErrorCode(t, err, models.CodeConflict)
}

func TestSignupSuccess(t *testing.T) {
	users := noopUserRepo()
	var stored *models.User
	users.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 1
		stored = u
		return nil
	}
	svc := NewUserService(users, noopFollowRepo(), testTokens())

	result, err := svc.Signup(context.Background(), "  Alice ", "Alice@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, "Alice", result.Name)
	assert.NotEmpty(t, result.Token)

	// Stored password is hashed, email normalized.
	require.NotNil(t, stored)
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.NotEqual(t, "password123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "password123"))

	// Issued token resolves back to the account email.
	email, err := testTokens().Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewUserService(noopUserRepo(), noopFollowRepo(), testTokens())

	_, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assertAppErrorCode(t, err, models.CodeUnauthorized)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)

	users := noopUserRepo()
	users.getByEmailFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 1, Email: "alice@example.com", Password: hashed}, nil
	}
	svc := NewUserService(users, noopFollowRepo(), testTokens())

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assertAppErrorCode(t, err, models.CodeUnauthorized)
}

func TestLoginSuccess(t *testing.T) {
	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)

	users := noopUserRepo()
	users.getByEmailFn = func(context.Context, string) (*models.User, error) {
		return &models.User{
			ID: 1, Name: "alice", Email: "alice@example.com", Password: hashed,
			FollowersCount: 3, FollowingCount: 2,
		}, nil
	}
	svc := NewUserService(users, noopFollowRepo(), testTokens())

	result, err := svc.Login(context.Background(), "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 3, result.FollowersCount)
	assert.Equal(t, 2, result.FollowingCount)
	assert.NotEmpty(t, result.Token)
}

func TestProfileAnnotations(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Name: "bob", FollowersCount: 1}, nil
	}
	follows := noopFollowRepo()
	follows.existsFn = func(_ context.Context, followerID, followingID uint) (bool, error) {
		return followerID == 1 && followingID == 2, nil
	}
	svc := NewUserService(users, follows, testTokens())

	profile, err := svc.Profile(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.True(t, profile.IsFollowing)
	assert.False(t, profile.IsOwnProfile)

	own, err := svc.Profile(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.False(t, own.IsFollowing)
	assert.True(t, own.IsOwnProfile)
}

func TestUpdateProfileKeepsUnsetFields(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Name: "alice", Bio: "old bio", ImageURL: "/media/old.webp"}, nil
	}
	var updated *models.User
	users.updateProfileFn = func(_ context.Context, u *models.User) error {
		updated = u
		return nil
	}
	svc := NewUserService(users, noopFollowRepo(), testTokens())

	_, err := svc.UpdateProfile(context.Background(), 1, "alice2", "", "")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "alice2", updated.Name)
	assert.Equal(t, "old bio", updated.Bio)
	assert.Equal(t, "/media/old.webp", updated.ImageURL)
}
