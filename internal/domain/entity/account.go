// Package entity contains the core business objects of the catalog.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered identity. Email is the unique login key.
type Account struct {
	ID           uuid.UUID // Assigned by the store on creation.
	Email        string    // Exact-match identity key.
	PasswordHash string    // bcrypt hash; the plaintext is never kept.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
