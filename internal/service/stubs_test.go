package service

import (
	"context"

	"lumeo/internal/models"
)

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByIDsFn      func(context.Context, []uint) ([]models.User, error)
	mostFollowedFn  func(context.Context, int, uint) ([]models.User, error)
	updateProfileFn func(context.Context, *models.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *userRepoStub) MostFollowed(ctx context.Context, limit int, excludeID uint) ([]models.User, error) {
	return s.mostFollowedFn(ctx, limit, excludeID)
}
func (s *userRepoStub) UpdateProfile(ctx context.Context, user *models.User) error {
	return s.updateProfileFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(context.Context, *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		getByIDsFn: func(_ context.Context, ids []uint) ([]models.User, error) {
			users := make([]models.User, 0, len(ids))
			for _, id := range ids {
				users = append(users, models.User{ID: id})
			}
			return users, nil
		},
		mostFollowedFn:  func(context.Context, int, uint) ([]models.User, error) { return nil, nil },
		updateProfileFn: func(context.Context, *models.User) error { return nil },
	}
}

type followRepoStub struct {
	followFn          func(context.Context, uint, uint) error
	unfollowFn        func(context.Context, uint, uint) error
	existsFn          func(context.Context, uint, uint) (bool, error)
	followerIDsFn     func(context.Context, uint, int, int) ([]uint, error)
	followingIDsFn    func(context.Context, uint, int, int) ([]uint, error)
	allFollowingIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID uint) error {
	return s.followFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID uint) error {
	return s.unfollowFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followingID)
}
func (s *followRepoStub) FollowerIDs(ctx context.Context, userID uint, page, limit int) ([]uint, error) {
	return s.followerIDsFn(ctx, userID, page, limit)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, userID uint, page, limit int) ([]uint, error) {
	return s.followingIDsFn(ctx, userID, page, limit)
}
func (s *followRepoStub) AllFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.allFollowingIDsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:          func(context.Context, uint, uint) error { return nil },
		unfollowFn:        func(context.Context, uint, uint) error { return nil },
		existsFn:          func(context.Context, uint, uint) (bool, error) { return false, nil },
		followerIDsFn:     func(context.Context, uint, int, int) ([]uint, error) { return nil, nil },
		followingIDsFn:    func(context.Context, uint, int, int) ([]uint, error) { return nil, nil },
		allFollowingIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint64) (*models.Post, error)
	deleteFn       func(context.Context, uint64) error
	byOwnersFn     func(context.Context, []uint, int, int) ([]models.Post, error)
	popularFn      func(context.Context, int, int) ([]models.Post, error)
	addLikeFn      func(context.Context, uint64, uint) error
	removeLikeFn   func(context.Context, uint64, uint) error
	isLikedFn      func(context.Context, uint64, uint) (bool, error)
	likedPostIDsFn func(context.Context, uint, []uint64) (map[uint64]bool, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint64) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint64) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) ByOwners(ctx context.Context, ownerIDs []uint, page, limit int) ([]models.Post, error) {
	return s.byOwnersFn(ctx, ownerIDs, page, limit)
}
func (s *postRepoStub) Popular(ctx context.Context, page, limit int) ([]models.Post, error) {
	return s.popularFn(ctx, page, limit)
}
func (s *postRepoStub) AddLike(ctx context.Context, postID uint64, userID uint) error {
	return s.addLikeFn(ctx, postID, userID)
}
func (s *postRepoStub) RemoveLike(ctx context.Context, postID uint64, userID uint) error {
	return s.removeLikeFn(ctx, postID, userID)
}
func (s *postRepoStub) IsLiked(ctx context.Context, postID uint64, userID uint) (bool, error) {
	return s.isLikedFn(ctx, postID, userID)
}
func (s *postRepoStub) LikedPostIDs(ctx context.Context, userID uint, postIDs []uint64) (map[uint64]bool, error) {
	return s.likedPostIDsFn(ctx, userID, postIDs)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:     func(context.Context, *models.Post) error { return nil },
		getByIDFn:    func(_ context.Context, id uint64) (*models.Post, error) { return &models.Post{ID: id}, nil },
		deleteFn:     func(context.Context, uint64) error { return nil },
		byOwnersFn:   func(context.Context, []uint, int, int) ([]models.Post, error) { return nil, nil },
		popularFn:    func(context.Context, int, int) ([]models.Post, error) { return nil, nil },
		addLikeFn:    func(context.Context, uint64, uint) error { return nil },
		removeLikeFn: func(context.Context, uint64, uint) error { return nil },
		isLikedFn:    func(context.Context, uint64, uint) (bool, error) { return false, nil },
		likedPostIDsFn: func(context.Context, uint, []uint64) (map[uint64]bool, error) {
			return map[uint64]bool{}, nil
		},
	}
}

type commentRepoStub struct {
	addFn     func(context.Context, *models.Comment) error
	removeFn  func(context.Context, uint) error
	getByIDFn func(context.Context, uint) (*models.Comment, error)
	byPostFn  func(context.Context, uint64, int, int) ([]models.Comment, error)
}

func (s *commentRepoStub) Add(ctx context.Context, comment *models.Comment) error {
	return s.addFn(ctx, comment)
}
func (s *commentRepoStub) Remove(ctx context.Context, commentID uint) error {
	return s.removeFn(ctx, commentID)
}
func (s *commentRepoStub) GetByID(ctx context.Context, commentID uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, commentID)
}
func (s *commentRepoStub) ByPost(ctx context.Context, postID uint64, page, limit int) ([]models.Comment, error) {
	return s.byPostFn(ctx, postID, page, limit)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		addFn:     func(context.Context, *models.Comment) error { return nil },
		removeFn:  func(context.Context, uint) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		byPostFn:  func(context.Context, uint64, int, int) ([]models.Comment, error) { return nil, nil },
	}
}
