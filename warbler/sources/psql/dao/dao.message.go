package dao

import (
	"context"
	"errors"
	"time"

	"warbler/warbler/sources/psql/models"

	"gorm.io/gorm"
)

// TimelineLimit caps every timeline query at the 100 most recent messages.
const TimelineLimit = 100

type MessageDAO struct {
	DB *gorm.DB
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{DB: db}
}

func (dao *MessageDAO) CreateMessage(ctx context.Context, userID uint, text string) (*models.Message, error) {
	msg := models.Message{
		Text:      text,
		Timestamp: time.Now().UTC(),
		UserID:    userID,
	}
	if err := dao.DB.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (dao *MessageDAO) GetMessageByID(ctx context.Context, id uint) (*models.Message, error) {
	var msg models.Message
	err := dao.DB.WithContext(ctx).First(&msg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteMessage removes the message and any likes pointing at it.
func (dao *MessageDAO) DeleteMessage(ctx context.Context, id uint) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Message{}, id).Error
	})
}

// GetByUser returns a single user's messages, newest first.
func (dao *MessageDAO) GetByUser(ctx context.Context, userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(TimelineLimit).
		Find(&messages).Error
	return messages, err
}

// GetByAuthors returns messages authored by any id in the set, newest
// first, capped at TimelineLimit. An empty author set yields an empty
// timeline.
func (dao *MessageDAO) GetByAuthors(ctx context.Context, authorIDs []uint) ([]models.Message, error) {
	if len(authorIDs) == 0 {
		return []models.Message{}, nil
	}
	var messages []models.Message
	err := dao.DB.WithContext(ctx).
		Where("user_id IN ?", authorIDs).
		Order("timestamp DESC").
		Limit(TimelineLimit).
		Find(&messages).Error
	return messages, err
}
