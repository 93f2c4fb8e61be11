package models

import (
	"time"
)

type Plan struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TrainerID    string    `json:"trainerId" gorm:"column:trainer_id;type:uuid;not null"`
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description" gorm:"type:text"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"durationDays" gorm:"column:duration_days"`
	PictureURL   string    `json:"pictureUrl" gorm:"column:picture_url"`
	Trainer      *User     `json:"trainer,omitempty" gorm:"foreignKey:TrainerID"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Plan) TableName() string {
	return "fitness_plans"
}
