package domain

import (
	"time"
)

type LoginAs string

const (
	LoginAsStaff    LoginAs = "staff"
	LoginAsCustomer LoginAs = "customer"
)

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Session ties a refresh token to the sealed upstream API key of the signed-in user.
type Session struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"user_id"`
	StaffName    string    `json:"staff_name"`
	SealedKey    string    `json:"-"`
	RefreshToken string    `json:"refresh_token"`
	UserAgent    string    `json:"user_agent"`
	IP           string    `json:"ip"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	LoginAs  LoginAs `json:"login_as" binding:"omitempty,oneof=staff customer"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Principal is the signed-in user behind a request. APIKey is filled in by the
// auth middleware from the session and never leaves the process.
type Principal struct {
	UserID    int64
	SessionID string
	APIKey    string
}
