package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record. ActivityType and MainSpecialty describe the
// bidder's line of business and feed the analysis fit scorer.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	ActivityType  string    `json:"activity_type"`
	MainSpecialty string    `json:"main_specialty"`
	CreatedAt     time.Time `json:"created_at"`
}

type SignupRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	ActivityType  string `json:"activity_type"`
	MainSpecialty string `json:"main_specialty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
