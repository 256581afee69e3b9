package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("super-secret")
	tok, err := tokens.Issue("user-123", "a@b.co")
	require.NoError(t, err)

	v := tokens.Verify(tok)
	require.True(t, v.Valid())
	assert.Equal(t, "user-123", v.Claims.UserID)
	assert.Equal(t, "a@b.co", v.Claims.Email)
	require.NotNil(t, v.Claims.IssuedAt)
	require.NotNil(t, v.Claims.ExpiresAt)
	assert.Equal(t, TokenTTL, v.Claims.ExpiresAt.Sub(v.Claims.IssuedAt.Time))
}

func TestVerify_Lifecycle(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 8, 9, 12, 0, 0, 0, time.UTC)
	tok, err := NewTokens("k").WithClock(fixedClock(issuedAt)).Issue("u1", "u1@example.com")
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want TokenStatus
	}{
		{"fresh", issuedAt, TokenValid},
		{"six days later", issuedAt.Add(6 * 24 * time.Hour), TokenValid},
		{"just before expiry", issuedAt.Add(TokenTTL - time.Second), TokenValid},
		{"at expiry", issuedAt.Add(TokenTTL), TokenExpired},
		{"eight days later", issuedAt.Add(8 * 24 * time.Hour), TokenExpired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewTokens("k").WithClock(fixedClock(tc.at)).Verify(tok)
			assert.Equal(t, tc.want, v.Status)
		})
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokens("right-secret").Issue("u2", "u2@example.com")
	require.NoError(t, err)

	assert.Equal(t, TokenInvalid, NewTokens("wrong-secret").Verify(tok).Status)
}

func TestVerify_AlteredSignature(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("k")
	tok, err := tokens.Issue("u3", "u3@example.com")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	altered := parts[0] + "." + parts[1] + "." + string(sig)

	assert.Equal(t, TokenInvalid, tokens.Verify(altered).Status)

	// Age does not matter for a forged token.
	later := tokens.WithClock(fixedClock(time.Now().Add(10 * 24 * time.Hour)))
	assert.Equal(t, TokenInvalid, later.Verify(altered).Status)
}

func TestVerify_AlteredPayload(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("k")
	tok, err := tokens.Issue("victim", "v@example.com")
	require.NoError(t, err)
	other, err := tokens.Issue("attacker", "a@example.com")
	require.NoError(t, err)

	// attacker's payload with victim's signature
	v := strings.Split(tok, ".")
	a := strings.Split(other, ".")
	assert.Equal(t, TokenInvalid, tokens.Verify(v[0]+"."+a[1]+"."+v[2]).Status)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("k")
	for _, tok := range []string{"", "not.a.jwt", "abc", "a.b", "...."} {
		assert.Equal(t, TokenInvalid, tokens.Verify(tok).Status, "token %q", tok)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := Claims{
		UserID: "u4",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.Equal(t, TokenInvalid, NewTokens("k").Verify(tok).Status)
}

func TestVerify_MissingUserID(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	assert.Equal(t, TokenInvalid, NewTokens("k").Verify(tok).Status)
}

func TestIssue_EmptyUserID(t *testing.T) {
	_, err := NewTokens("k").Issue("", "x@y.z")
	assert.Error(t, err)
}

func TestNewTokens_DefaultKey(t *testing.T) {
	t.Parallel()

	a := NewTokens("")
	assert.True(t, a.UsingDefaultKey())
	assert.False(t, NewTokens("configured").UsingDefaultKey())

	// The default key is deterministic across instances.
	tok, err := a.Issue("u5", "u5@example.com")
	require.NoError(t, err)
	assert.True(t, NewTokens("").Verify(tok).Valid())
}

func TestTokenStatus_String(t *testing.T) {
	assert.Equal(t, "valid", TokenValid.String())
	assert.Equal(t, "expired", TokenExpired.String())
	assert.Equal(t, "invalid", TokenInvalid.String())
}
