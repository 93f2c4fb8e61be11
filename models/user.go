package models

import (
	"time"
)

type Role string

// Les deux rôles de la plateforme: USER s'abonne et suit, TRAINER publie
const (
	UserRole    Role = "USER"
	TrainerRole Role = "TRAINER"
)

type User struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email          string    `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password       string    `json:"-"`
	Role           Role      `json:"role" gorm:"type:varchar(20);default:'USER'"`
	FullName       string    `json:"fullName" gorm:"column:full_name"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profilePicture" gorm:"column:profile_picture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// UserCreate modèle pour l'inscription et le login
type UserCreate struct {
	Email    string `json:"email" binding:"required" example:"sarah.coach@exemple.com"`
	Password string `json:"password" binding:"required" example:"Secret123"`
	FullName string `json:"fullName" example:"Sarah Coach"`
	Role     Role   `json:"role" example:"TRAINER"`
}

// UserUpdate modèle pour la mise à jour du profil
type UserUpdate struct {
	FullName string `json:"fullName"`
	Bio      string `json:"bio"`
}
