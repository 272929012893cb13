package service

import (
	"context"
	"strings"

	"lumeo/internal/auth"
	"lumeo/internal/models"
	"lumeo/internal/repository"
)

// UserService provides account, authentication and profile business logic.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	tokens     *auth.TokenManager
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		tokens:     tokens,
	}
}

// Signup creates a new account and returns it with a fresh token.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (*models.AuthUser, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return nil, models.NewValidationError("Name, email and password are required")
	}
	if !strings.Contains(email, "@") {
		return nil, models.NewValidationError("Invalid email address")
	}
	if len(password) < 8 {
		return nil, models.NewValidationError("Password must be at least 8 characters")
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("A user with this email already exists")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{Name: name, Email: email, Password: hashed}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authUser(user)
}

// Login authenticates by email and password and returns the account with a
// fresh token.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.AuthUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.Password, password) {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}

	return s.authUser(user)
}

// ByEmail resolves an account from a verified token's email claim. A nil
// user with nil error means no such account.
func (s *UserService) ByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// Profile returns an account as seen by the viewer.
func (s *UserService) Profile(ctx context.Context, targetID, viewerID uint) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if targetID != viewerID {
		isFollowing, err = s.followRepo.Exists(ctx, viewerID, targetID)
		if err != nil {
			return nil, err
		}
	}

	return &models.Profile{
		ID:             user.ID,
		Name:           user.Name,
		Bio:            user.Bio,
		ImageURL:       user.ImageURL,
		FollowersCount: user.FollowersCount,
		FollowingCount: user.FollowingCount,
		IsFollowing:    isFollowing,
		IsOwnProfile:   targetID == viewerID,
	}, nil
}

// UpdateProfile edits the caller's display name, bio and avatar. Empty
// fields keep their current value.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, name, bio, imageURL string) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
	}
	if bio = strings.TrimSpace(bio); bio != "" {
		user.Bio = bio
	}
	if imageURL != "" {
		user.ImageURL = imageURL
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return s.Profile(ctx, userID, userID)
}

func (s *UserService) authUser(user *models.User) (*models.AuthUser, error) {
	token, err := s.tokens.Generate(user.Email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &models.AuthUser{
		ID:             user.ID,
		Name:           user.Name,
		Bio:            user.Bio,
		ImageURL:       user.ImageURL,
		Token:          token,
		FollowersCount: user.FollowersCount,
		FollowingCount: user.FollowingCount,
	}, nil
}
