package model

import (
	"time"

	"docbuilder/pkg/response"
)

type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type SignupResponse struct {
	response.Base
	UserID string `json:"userId,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	response.Base
	UserID string `json:"userId,omitempty"`
	Token  string `json:"token,omitempty"`
}

// OwnerRequest carries the body-supplied account id used by getUser and
// logout.
type OwnerRequest struct {
	UserID string `json:"userId"`
}

type AccountResponse struct {
	response.Base
	User *Account `json:"user,omitempty"`
}
