package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the persisted identity used for authentication. The email is
// the unique lookup key, matched exactly as stored. PasswordHash is opaque to
// everything except the password hasher and is never serialized: signup and
// signin responses expose only the public fields.
type Credential struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
