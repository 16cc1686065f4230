package store

import "time"

// Store is one physical shop owned by a user account.
type Store struct {
	ID        string
	OwnerID   string
	Name      string
	Address   *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
