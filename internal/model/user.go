package model

import (
	"errors"
	"time"
)

// DefaultProfileImg is assigned to local signups; federated accounts get the
// provider's picture instead.
const DefaultProfileImg = "https://api.dicebear.com/6.x/avataaars/svg"

// User represents a registered author.
type User struct {
	ID             int64     `db:"id" json:"id"`
	FullName       string    `db:"full_name" json:"fullName"`
	Email          string    `db:"email" json:"email"`
	Username       string    `db:"username" json:"username"`
	PasswordHashed *string   `db:"password_hashed" json:"-"` // nil for google accounts
	ProfileImg     string    `db:"profile_img" json:"profileImg"`
	GoogleAuth     bool      `db:"google_auth" json:"google_auth"`
	TotalPosts     int       `db:"total_posts" json:"total_posts"`
	TotalReads     int       `db:"total_reads" json:"total_reads"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// SignUpRequest is the body for POST /api/v1/auth/signup.
type SignUpRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest is the body for POST /api/v1/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleAuthRequest carries the provider-issued ID token.
type GoogleAuthRequest struct {
	AccessToken string `json:"access_token"`
}

// AuthResponse is the public profile + session token shape shared by all
// three auth endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	ProfileImg  string `json:"profileImg"`
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists is returned when the email unique index rejects an insert
	ErrEmailExists = errors.New("email already exists")

	// ErrGoogleAccount is returned on password signin against a federated-only account
	ErrGoogleAccount = errors.New("account was created with google")

	// ErrIncorrectPassword is returned when bcrypt comparison fails
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrNotGoogleAccount is returned on google auth against a password account
	ErrNotGoogleAccount = errors.New("user was signed up without google")
)

// ValidationError marks a client-fixable input problem; handlers map it to 403.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps a human-readable message for the error envelope.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
