package user

import "time"

// User is a store-owner account. Authentication is intentionally thin:
// enough to scope store data per owner, nothing more.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
