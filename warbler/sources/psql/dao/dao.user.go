package dao

import (
	"context"
	"errors"

	"warbler/warbler/sources/psql/models"
	"warbler/warbler/types"

	"gorm.io/gorm"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

func (dao *UserDAO) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser persists a fully-populated user record. A unique-index
// collision on username or email comes back as types.ErrDuplicateIdentity.
func (dao *UserDAO) CreateUser(ctx context.Context, user *models.User) error {
	err := dao.DB.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return types.ErrDuplicateIdentity
	}
	return err
}

func (dao *UserDAO) UpdateUser(ctx context.Context, user *models.User) error {
	err := dao.DB.WithContext(ctx).Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return types.ErrDuplicateIdentity
	}
	return err
}

// SearchUsers lists users, optionally filtered by a username substring.
func (dao *UserDAO) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	var users []models.User
	tx := dao.DB.WithContext(ctx)
	if query != "" {
		tx = tx.Where("username LIKE ?", "%"+query+"%")
	}
	if err := tx.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user and everything hanging off them: their
// messages, likes on those messages, their own likes, and follow edges
// in both directions. One transaction, all or nothing.
func (dao *UserDAO) DeleteUser(ctx context.Context, id uint) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var messageIDs []uint
		if err := tx.Model(&models.Message{}).Where("user_id = ?", id).Pluck("id", &messageIDs).Error; err != nil {
			return err
		}
		if len(messageIDs) > 0 {
			if err := tx.Where("message_id IN ?", messageIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
