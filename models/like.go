package models

import (
	"time"
)

// Un seul like par couple (post, user), l'index unique le garantit côté base
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID    string    `json:"postId" gorm:"column:post_id;type:uuid;uniqueIndex:idx_likes_post_user"`
	UserID    string    `json:"userId" gorm:"column:user_id;type:uuid;uniqueIndex:idx_likes_post_user"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
