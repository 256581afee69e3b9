// Package auth holds the credential primitives: password hashing, session
// tokens, input checks for registration and user id generation.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used outside of tests.
const DefaultCost = 12

type Passwords struct {
	cost int
}

// NewPasswords returns a hasher with the given bcrypt cost. Out-of-range
// costs fall back to DefaultCost.
func NewPasswords(cost int) *Passwords {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Passwords{cost: cost}
}

func (p *Passwords) Cost() int {
	return p.cost
}

// Hash returns a salted bcrypt hash of plain. Every call uses a fresh salt.
func (p *Passwords) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), p.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches hash. A malformed hash is a mismatch.
func (p *Passwords) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
