package model

import "time"

// User is an account shared by parents, providers and administrators.
// The key is the textual UUID issued by the identity provider.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	MiddleName   string    `json:"middle_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	Role         string    `json:"role"`
	IsBlocked    bool      `json:"is_blocked"`
	IsRegistered bool      `json:"is_registered"`
	CreatedAt    time.Time `json:"created_at"`
}
