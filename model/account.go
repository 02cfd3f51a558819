package model

import "time"

type Account struct {
	DTO
	Username string  `gorm:"not null;uniqueIndex" validate:"required" json:"username"`
	Password string  `gorm:"not null" json:"-"`
	FullName string  `json:"fullName"`
	Email    *string `json:"email"`
	Active   bool    `gorm:"default:true" json:"active"`
	Role     string  `gorm:"not null" json:"role"`
}

type PasswordResetToken struct {
	DTO
	AccountId uint      `gorm:"not null" json:"accountId"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
