package models

// Like marks that UserID has liked MessageID. One edge per pair.
type Like struct {
	UserID    uint `json:"user_id" gorm:"primaryKey;uniqueIndex:idx_like_pair"`
	MessageID uint `json:"message_id" gorm:"primaryKey;uniqueIndex:idx_like_pair"`
}

func (Like) TableName() string {
	return "likes"
}
