package models

import "time"

// MaxMessageLength bounds the text of a single message.
const MaxMessageLength = 140

type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Text      string    `json:"text" gorm:"type:varchar(140);not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
}

func (Message) TableName() string {
	return "messages"
}
