// Package service implements the business logic layer for the application.
package service

import (
	"context"

	"lumeo/internal/models"
	"lumeo/internal/repository"
)

// SuggestionLimit is the number of accounts returned by follow suggestions.
const SuggestionLimit = 5

// FollowService provides follow-graph business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates a follow edge and bumps both accounts' counters.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return models.NewValidationError("Cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return err
	}

	exists, err := s.followRepo.Exists(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if exists {
		return models.NewConflictError("Already following this user")
	}

	return s.followRepo.Follow(ctx, followerID, followingID)
}

// Unfollow removes a follow edge and restores both accounts' counters.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return models.NewValidationError("Cannot unfollow yourself")
	}
	return s.followRepo.Unfollow(ctx, followerID, followingID)
}

// Followers lists accounts following the given user, most recent edge first.
// Each entry carries whether the user follows that account back.
func (s *FollowService) Followers(ctx context.Context, userID uint, page, limit int) ([]models.FollowUser, error) {
	ids, err := s.followRepo.FollowerIDs(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	users, err := s.hydrateOrdered(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.FollowUser, 0, len(users))
	for _, u := range users {
		back, err := s.followRepo.Exists(ctx, userID, u.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, toFollowUser(u, back))
	}
	return result, nil
}

// Following lists accounts the given user follows, most recent edge first.
func (s *FollowService) Following(ctx context.Context, userID uint, page, limit int) ([]models.FollowUser, error) {
	ids, err := s.followRepo.FollowingIDs(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	users, err := s.hydrateOrdered(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.FollowUser, 0, len(users))
	for _, u := range users {
		// Membership in this list already means the user follows them.
		result = append(result, toFollowUser(u, true))
	}
	return result, nil
}

// Suggestions returns the most-followed accounts for a user who follows
// nobody yet. A user with any existing follow gets none.
func (s *FollowService) Suggestions(ctx context.Context, userID uint) ([]models.FollowUser, error) {
	following, err := s.followRepo.AllFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(following) > 0 {
		return nil, models.NewForbiddenError("User has following")
	}

	users, err := s.userRepo.MostFollowed(ctx, SuggestionLimit, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.FollowUser, 0, len(users))
	for _, u := range users {
		result = append(result, toFollowUser(u, false))
	}
	return result, nil
}

// hydrateOrdered batch-fetches accounts and restores the order of ids. The
// batch fetch returns rows in store order, which is not the edge order the
// page was built in.
func (s *FollowService) hydrateOrdered(ctx context.Context, ids []uint) ([]models.User, error) {
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	ordered := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			ordered = append(ordered, u)
		}
	}
	return ordered, nil
}

func toFollowUser(u models.User, isFollowing bool) models.FollowUser {
	return models.FollowUser{
		ID:          u.ID,
		Name:        u.Name,
		Bio:         u.Bio,
		ImageURL:    u.ImageURL,
		IsFollowing: isFollowing,
	}
}
