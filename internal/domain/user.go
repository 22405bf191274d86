package domain

import (
	"errors"
	"time"
)

// User comes from the auth context. The core only reads ID and IsAdmin.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

var (
	ErrUnauthenticated = errors.New("login required")
	ErrForbidden       = errors.New("admin access required")
)
