package controllers

import (
	"context"
	"io"

	"warbler/warbler/services/credentials"
	"warbler/warbler/sources/psql/dao"
	"warbler/warbler/sources/psql/models"
	"warbler/warbler/sources/storage"
	"warbler/warbler/types"
)

type UserController struct {
	userDAO   *dao.UserDAO
	followDAO *dao.FollowDAO
	likeDAO   *dao.LikeDAO
	store     *storage.MinIOClient
}

func NewUserController(userDAO *dao.UserDAO, followDAO *dao.FollowDAO, likeDAO *dao.LikeDAO, store *storage.MinIOClient) *UserController {
	return &UserController{
		userDAO:   userDAO,
		followDAO: followDAO,
		likeDAO:   likeDAO,
		store:     store,
	}
}

func (c *UserController) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := c.userDAO.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, types.ErrNotFound
	}
	return user, nil
}

// ListUsers lists all users, or those whose username contains query.
func (c *UserController) ListUsers(ctx context.Context, query string) ([]models.User, error) {
	return c.userDAO.SearchUsers(ctx, query)
}

// UpdateProfile edits the caller's own profile. The current password
// must be supplied and verify against the stored digest before any
// field changes.
func (c *UserController) UpdateProfile(ctx context.Context, userID uint, req types.UpdateProfileRequest) (*models.User, error) {
	user, err := c.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !credentials.Verify(req.Password, user.Password) {
		return nil, types.ErrInvalidPassword
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.ImageURL != nil {
		user.ImageURL = *req.ImageURL
	}
	if req.HeaderImageURL != nil {
		user.HeaderImageURL = *req.HeaderImageURL
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Location != nil {
		user.Location = req.Location
	}

	if err := c.userDAO.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the caller's account and everything attached to it.
func (c *UserController) DeleteUser(ctx context.Context, userID uint) error {
	user, err := c.userDAO.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return types.ErrNotFound
	}
	return c.userDAO.DeleteUser(ctx, userID)
}

// Follow adds the directed edge follower -> target. Following a user
// twice is a no-op; following yourself is rejected.
func (c *UserController) Follow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return types.ErrSelfFollow
	}
	target, err := c.userDAO.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return types.ErrNotFound
	}
	return c.followDAO.AddFollow(ctx, followerID, targetID)
}

// Unfollow removes the edge if present. Unfollowing someone you never
// followed is a no-op.
func (c *UserController) Unfollow(ctx context.Context, followerID, targetID uint) error {
	target, err := c.userDAO.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return types.ErrNotFound
	}
	return c.followDAO.RemoveFollow(ctx, followerID, targetID)
}

func (c *UserController) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	return c.followDAO.IsFollowing(ctx, followerID, targetID)
}

// IsFollowedBy reports whether other follows user: the reverse edge.
func (c *UserController) IsFollowedBy(ctx context.Context, userID, otherID uint) (bool, error) {
	return c.followDAO.IsFollowing(ctx, otherID, userID)
}

func (c *UserController) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := c.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return c.followDAO.Followers(ctx, userID)
}

func (c *UserController) Following(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := c.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return c.followDAO.Following(ctx, userID)
}

// LikedMessages lists the messages a user has liked, newest first.
func (c *UserController) LikedMessages(ctx context.Context, userID uint) ([]models.Message, error) {
	if _, err := c.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return c.likeDAO.LikedMessages(ctx, userID)
}

// UploadImage stores an avatar or header image and writes the resulting
// URL back to the profile. kind is "avatar" or "header".
func (c *UserController) UploadImage(ctx context.Context, userID uint, kind string, body io.Reader, size int64, contentType string) (*models.User, error) {
	user, err := c.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	url, err := c.store.UploadImage(ctx, userID, kind, body, size, contentType)
	if err != nil {
		return nil, err
	}
	if kind == "header" {
		user.HeaderImageURL = url
	} else {
		user.ImageURL = url
	}
	if err := c.userDAO.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
