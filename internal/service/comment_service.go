package service

import (
	"context"
	"strings"

	"lumeo/internal/models"
	"lumeo/internal/repository"
)

// CommentService provides comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment attaches a comment to a post and bumps its comment counter.
func (s *CommentService) AddComment(ctx context.Context, postID uint64, userID uint, body string) (*models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, models.NewValidationError("Comment body cannot be empty")
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Body:   body,
	}
	if err := s.commentRepo.Add(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. The comment's author and the post's
// author may both delete it.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, callerID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != callerID {
		post, err := s.postRepo.GetByID(ctx, comment.PostID)
		if err != nil {
			return err
		}
		if post.UserID != callerID {
			return models.NewForbiddenError("You can only delete your own comments")
		}
	}

	return s.commentRepo.Remove(ctx, commentID)
}

// Comments returns a page of a post's comments, newest first.
func (s *CommentService) Comments(ctx context.Context, postID uint64, page, limit int) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ByPost(ctx, postID, page, limit)
}
