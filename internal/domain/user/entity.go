package user

import (
	"time"
)

type (
	// ID is the opaque document-store identifier of a user record.
	ID = string
	// User is the marketplace identity record. Name is the display name
	// shown as the owner of a listing.
	User struct {
		ID           ID
		Email        string
		PasswordHash *string
		Name         string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
