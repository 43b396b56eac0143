package dao

import (
	"context"
	"errors"

	"warbler/warbler/sources/psql/models"

	"gorm.io/gorm"
)

type FollowDAO struct {
	DB *gorm.DB
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{DB: db}
}

// AddFollow inserts the directed edge follower -> followed. A duplicate
// edge is a no-op success: the unique index rejects the second insert and
// we swallow it, so a double-submitted form cannot accumulate edges.
func (dao *FollowDAO) AddFollow(ctx context.Context, followerID, followedID uint) error {
	edge := models.Follow{FollowerID: followerID, FollowedID: followedID}
	err := dao.DB.WithContext(ctx).Create(&edge).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// RemoveFollow deletes the edge if present; removing an absent edge is
// a no-op.
func (dao *FollowDAO) RemoveFollow(ctx context.Context, followerID, followedID uint) error {
	return dao.DB.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
}

func (dao *FollowDAO) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	err := dao.DB.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

// FollowingIDs returns the set of user ids this user follows.
func (dao *FollowDAO) FollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	err := dao.DB.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error
	return ids, err
}

// Following returns the users this user follows.
func (dao *FollowDAO) Following(ctx context.Context, followerID uint) ([]models.User, error) {
	var users []models.User
	err := dao.DB.WithContext(ctx).
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", followerID).
		Find(&users).Error
	return users, err
}

// Followers returns the users following this user.
func (dao *FollowDAO) Followers(ctx context.Context, followedID uint) ([]models.User, error) {
	var users []models.User
	err := dao.DB.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", followedID).
		Find(&users).Error
	return users, err
}
