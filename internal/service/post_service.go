package service

import (
	"context"

	"lumeo/internal/idgen"
	"lumeo/internal/models"
	"lumeo/internal/observability"
	"lumeo/internal/repository"
)

// PostService provides post, feed and like business logic.
type PostService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, followRepo repository.FollowRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo:   postRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// CreatePost publishes a new post. The ID is issued by the service rather
// than the store, so a deleted post's ID is never handed out again.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, caption, imageURL string) (*models.Post, error) {
	if imageURL == "" {
		return nil, models.NewValidationError("Post image is required")
	}

	post := &models.Post{
		ID:       idgen.NewID(),
		Caption:  caption,
		ImageURL: imageURL,
		UserID:   authorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	post.OwnPost = true
	return post, nil
}

// Feed assembles the viewer's timeline. A viewer who follows at least one
// account gets a time-ordered page of posts from their follow set plus their
// own. A viewer who follows nobody falls back to the most-liked posts across
// all authors.
func (s *PostService) Feed(ctx context.Context, viewerID uint, page, limit int) ([]models.Post, error) {
	following, err := s.followRepo.AllFollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	members := append(following, viewerID)

	var posts []models.Post
	if len(members) > 1 {
		posts, err = s.postRepo.ByOwners(ctx, members, page, limit)
	} else {
		observability.FeedFallbacks.Inc()
		posts, err = s.postRepo.Popular(ctx, page, limit)
	}
	if err != nil {
		return nil, err
	}

	return s.annotate(ctx, posts, viewerID)
}

// PostsByUser returns a time-ordered page of one author's posts.
func (s *PostService) PostsByUser(ctx context.Context, ownerID, viewerID uint, page, limit int) ([]models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ByOwners(ctx, []uint{ownerID}, page, limit)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, posts, viewerID)
}

// GetPost returns a single post annotated for the viewer.
func (s *PostService) GetPost(ctx context.Context, postID uint64, viewerID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, postID, viewerID)
	if err != nil {
		return nil, err
	}
	post.Liked = liked
	post.OwnPost = post.UserID == viewerID
	return post, nil
}

// DeletePost removes a post and everything attached to it. Only the author
// may delete.
func (s *PostService) DeletePost(ctx context.Context, postID uint64, callerID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}

// AddLike records a like and bumps the post's like counter.
func (s *PostService) AddLike(ctx context.Context, postID uint64, userID uint) error {
	return s.postRepo.AddLike(ctx, postID, userID)
}

// RemoveLike removes a like and restores the post's like counter.
func (s *PostService) RemoveLike(ctx context.Context, postID uint64, userID uint) error {
	return s.postRepo.RemoveLike(ctx, postID, userID)
}

// annotate fills the viewer-relative fields on a page of posts with a single
// like lookup.
func (s *PostService) annotate(ctx context.Context, posts []models.Post, viewerID uint) ([]models.Post, error) {
	if len(posts) == 0 {
		return []models.Post{}, nil
	}

	ids := make([]uint64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	liked, err := s.postRepo.LikedPostIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].Liked = liked[posts[i].ID]
		posts[i].OwnPost = posts[i].UserID == viewerID
	}
	return posts, nil
}
