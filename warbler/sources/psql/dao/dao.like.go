package dao

import (
	"context"
	"errors"

	"warbler/warbler/sources/psql/models"

	"gorm.io/gorm"
)

type LikeDAO struct {
	DB *gorm.DB
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{DB: db}
}

func (dao *LikeDAO) HasLike(ctx context.Context, userID, messageID uint) (bool, error) {
	var count int64
	err := dao.DB.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error
	return count > 0, err
}

func (dao *LikeDAO) AddLike(ctx context.Context, userID, messageID uint) error {
	edge := models.Like{UserID: userID, MessageID: messageID}
	err := dao.DB.WithContext(ctx).Create(&edge).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A racing duplicate means the like already exists, which is the
		// state the caller asked for.
		return nil
	}
	return err
}

func (dao *LikeDAO) RemoveLike(ctx context.Context, userID, messageID uint) error {
	return dao.DB.WithContext(ctx).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{}).Error
}

// CountForMessage returns how many users like a message.
func (dao *LikeDAO) CountForMessage(ctx context.Context, messageID uint) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).Model(&models.Like{}).
		Where("message_id = ?", messageID).
		Count(&count).Error
	return count, err
}

// LikedMessages returns the messages a user has liked, newest first.
func (dao *LikeDAO) LikedMessages(ctx context.Context, userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := dao.DB.WithContext(ctx).Model(&models.Message{}).
		Joins("JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", userID).
		Order("messages.timestamp DESC").
		Find(&messages).Error
	return messages, err
}

// LikedMessageIDs returns just the ids, for marking liked state in a
// rendered timeline.
func (dao *LikeDAO) LikedMessageIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := dao.DB.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ?", userID).
		Pluck("message_id", &ids).Error
	return ids, err
}
