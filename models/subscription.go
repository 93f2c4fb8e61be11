package models

import (
	"time"
)

// Subscription donne accès au contenu complet d'un plan
type Subscription struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"userId" gorm:"column:user_id;type:uuid;uniqueIndex:idx_subscriptions_user_plan"`
	PlanID    string    `json:"planId" gorm:"column:plan_id;type:uuid;uniqueIndex:idx_subscriptions_user_plan"`
	Plan      *Plan     `json:"plan,omitempty" gorm:"foreignKey:PlanID"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
