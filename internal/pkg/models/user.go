package models

import (
	"time"
)

// User represents a registered rider or vendor
type User struct {
	ID            int64     `json:"id" db:"id"`
	Handle        string    `json:"handle" db:"handle"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	DisplayName   string    `json:"display_name" db:"display_name"`
	Whatsapp      string    `json:"whatsapp,omitempty" db:"whatsapp"`
	Phone         string    `json:"phone,omitempty" db:"phone"`
	PaymentHandle string    `json:"payment_handle,omitempty" db:"payment_handle"`
	IsVendor      bool      `json:"is_vendor" db:"is_vendor"`
	CompanyName   string    `json:"company_name,omitempty" db:"company_name"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// UserSummary is the creator/passenger view attached to ride responses
type UserSummary struct {
	ID          int64  `json:"id" db:"id"`
	Handle      string `json:"handle" db:"handle"`
	DisplayName string `json:"display_name" db:"display_name"`
	Whatsapp    string `json:"whatsapp,omitempty" db:"whatsapp"`
	Phone       string `json:"phone,omitempty" db:"phone"`
	IsVendor    bool   `json:"is_vendor" db:"is_vendor"`
}

// Summary strips credential and audit fields from a user
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		Handle:      u.Handle,
		DisplayName: u.DisplayName,
		Whatsapp:    u.Whatsapp,
		Phone:       u.Phone,
		IsVendor:    u.IsVendor,
	}
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Handle        string `json:"handle"`
	Password      string `json:"password"`
	DisplayName   string `json:"display_name"`
	Whatsapp      string `json:"whatsapp"`
	Phone         string `json:"phone"`
	PaymentHandle string `json:"payment_handle"`
	IsVendor      bool   `json:"is_vendor"`
	CompanyName   string `json:"company_name"`
}

// LoginRequest is the payload for password login
type LoginRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token after register/login
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"user_id"`
	IsVendor  bool   `json:"is_vendor"`
	ExpiresAt int64  `json:"expires_at"`
}

// UpdateProfileRequest is the payload for profile updates; nil fields are untouched
type UpdateProfileRequest struct {
	DisplayName   *string `json:"display_name"`
	Whatsapp      *string `json:"whatsapp"`
	Phone         *string `json:"phone"`
	PaymentHandle *string `json:"payment_handle"`
	CompanyName   *string `json:"company_name"`
}

// ResetRequest starts a password reset for a handle
type ResetRequest struct {
	Handle string `json:"handle"`
}

// ResetConfirm completes a password reset with the issued token
type ResetConfirm struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
