package models

import (
	"time"
)

// Follow relie un utilisateur au trainer qu'il suit
type Follow struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FollowerID string    `json:"followerId" gorm:"column:follower_id;type:uuid;uniqueIndex:idx_follows_follower_trainer"`
	TrainerID  string    `json:"trainerId" gorm:"column:trainer_id;type:uuid;uniqueIndex:idx_follows_follower_trainer"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Follow) TableName() string {
	return "follows"
}
