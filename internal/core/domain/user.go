package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a dashboard account. Accounts are provisioned operationally; there
// is no self-service registration endpoint.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose
	CreatedAt    time.Time `json:"created_at"`
}
