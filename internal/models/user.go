package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is keyed by email; one row per account.
type User struct {
	Email         string     `json:"email" gorm:"primaryKey"`
	Username      string     `json:"username"`
	FullName      string     `json:"full_name"`
	Password      string     `json:"-" gorm:"not null"`
	PhoneNumber   string     `json:"phone"`
	Address       string     `json:"address"`
	Role          string     `json:"role" gorm:"not null;default:user"`
	EmailVerified bool       `json:"email_verified" gorm:"default:false"`
	OTPCode       string     `json:"-"`
	OTPExpiresAt  *time.Time `json:"-"`
	AvatarURL     string     `json:"avatar_url"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PublicUser is the projection embedded in login responses.
type PublicUser struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}

type UpdateProfileRequest struct {
	Username *string `json:"username"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

type UserPage struct {
	Total   int64  `json:"total"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Items   []User `json:"items"`
}
