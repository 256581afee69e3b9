package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswords_HashAndVerify(t *testing.T) {
	t.Parallel()

	p := NewPasswords(bcrypt.MinCost)
	h1, err := p.Hash("Abc123")
	require.NoError(t, err)
	h2, err := p.Hash("Abc123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "salt must differ between calls")
	assert.True(t, p.Verify("Abc123", h1))
	assert.True(t, p.Verify("Abc123", h2))
	assert.False(t, p.Verify("abc123", h1))
	assert.False(t, p.Verify("", h1))
}

func TestPasswords_MalformedHash(t *testing.T) {
	t.Parallel()

	p := NewPasswords(bcrypt.MinCost)
	assert.NotPanics(t, func() {
		assert.False(t, p.Verify("Abc123", ""))
		assert.False(t, p.Verify("Abc123", "not-a-hash"))
		assert.False(t, p.Verify("Abc123", "$2a$10$short"))
	})
}

func TestNewPasswords_Cost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultCost, NewPasswords(0).cost)
	assert.Equal(t, DefaultCost, NewPasswords(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewPasswords(bcrypt.MinCost).Cost())

	h, err := NewPasswords(bcrypt.MinCost).Hash("Abc123")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(h))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		valid    bool
		reason   string
	}{
		{"abc123", false, "uppercase"},
		{"ABC123", false, "lowercase"},
		{"Abcdef", false, "number"},
		{"Abc123", true, ""},
		{"Ab1", false, "at least 6"},
		{"", false, "at least 6"},
		// length is checked before character classes
		{"abc", false, "at least 6"},
		// lowercase is reported before uppercase
		{"123456", false, "lowercase"},
		// five characters, seven bytes
		{"Ab1éé", false, "at least 6"},
		{"Ab1ééé", true, ""},
	}
	for _, tc := range tests {
		got := ValidatePassword(tc.password)
		assert.Equal(t, tc.valid, got.Valid, "password %q", tc.password)
		if !tc.valid {
			assert.True(t, strings.Contains(got.Reason, tc.reason), "password %q: reason %q", tc.password, got.Reason)
		} else {
			assert.Empty(t, got.Reason)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"a@b.co", "first.last@example.com", "User@Example.ORG", "x+tag@sub.domain.io"}
	invalid := []string{"", "plain", "a@b", "@b.co", "a@.", "a b@c.de", "a@@b.co", "a@b .co"}

	for _, e := range valid {
		assert.True(t, ValidateEmail(e), "expected %q valid", e)
	}
	for _, e := range invalid {
		assert.False(t, ValidateEmail(e), "expected %q invalid", e)
	}
}

func TestNewUserID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewUserID()
		require.True(t, strings.HasPrefix(id, "user_"))
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.NotEqual(t, NewID(), NewID())
}
