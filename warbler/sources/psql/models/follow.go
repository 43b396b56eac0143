package models

// Follow is a directed edge: FollowerID's home timeline includes
// FollowedID's messages. The composite unique index rejects duplicate
// edges at the storage layer, which is what resolves double-click races.
type Follow struct {
	FollowerID uint `json:"follower_id" gorm:"primaryKey;uniqueIndex:idx_follow_pair"`
	FollowedID uint `json:"followed_id" gorm:"primaryKey;uniqueIndex:idx_follow_pair"`
}

func (Follow) TableName() string {
	return "follows"
}
