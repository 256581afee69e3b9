package auth

import (
	"github.com/google/uuid"
)

// NewUserID returns a "user_" prefixed UUIDv7: a millisecond timestamp
// followed by random bits.
func NewUserID() string {
	return "user_" + newV7()
}

// NewID returns an identifier for boards and tasks.
func NewID() string {
	return newV7()
}

func newV7() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does.
		return uuid.NewString()
	}
	return id.String()
}
