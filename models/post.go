package models

import (
	"time"
)

type Post struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TrainerID  string    `json:"trainerId" gorm:"column:trainer_id;type:uuid;not null"`
	PictureURL string    `json:"pictureUrl" gorm:"column:picture_url"`
	Caption    string    `json:"caption"`
	Trainer    *User     `json:"trainer,omitempty" gorm:"foreignKey:TrainerID"`
	Likes      []Like    `json:"likes,omitempty" gorm:"foreignKey:PostID"`
	Comments   []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}
