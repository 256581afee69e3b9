package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL is the fixed lifetime of a session token.
const TokenTTL = 7 * 24 * time.Hour

// defaultSecret signs tokens when no JWT_SECRET is configured. Anyone who
// reads this source can forge sessions against such a deployment.
const defaultSecret = "taskboard-dev-secret-change-in-production"

type TokenStatus int

const (
	TokenInvalid TokenStatus = iota
	TokenValid
	TokenExpired
)

func (s TokenStatus) String() string {
	switch s {
	case TokenValid:
		return "valid"
	case TokenExpired:
		return "expired"
	default:
		return "invalid"
	}
}

// Claims is the session payload carried inside the token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Verification is the outcome of checking a token. Claims is only
// meaningful when Status is TokenValid.
type Verification struct {
	Status TokenStatus
	Claims Claims
}

func (v Verification) Valid() bool {
	return v.Status == TokenValid
}

type Tokens struct {
	secret     []byte
	defaultKey bool
	now        func() time.Time
	parser     *jwt.Parser
}

// NewTokens builds a token service signing with secret. An empty secret
// selects the built-in development key; see UsingDefaultKey.
func NewTokens(secret string) *Tokens {
	t := &Tokens{
		secret: []byte(secret),
		now:    time.Now,
		// Expiry is checked against t.now instead of the parser's clock.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
	if secret == "" {
		t.secret = []byte(defaultSecret)
		t.defaultKey = true
	}
	return t
}

// WithClock replaces the time source. Used by tests.
func (t *Tokens) WithClock(now func() time.Time) *Tokens {
	t.now = now
	return t
}

func (t *Tokens) UsingDefaultKey() bool {
	return t.defaultKey
}

// Issue signs a token for the user valid for TokenTTL from now.
func (t *Tokens) Issue(userID, email string) (string, error) {
	if userID == "" {
		return "", errors.New("empty user id")
	}
	issued := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(TokenTTL)),
		},
	})
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry. It never fails loudly: malformed,
// tampered and foreign tokens are TokenInvalid, stale ones TokenExpired.
func (t *Tokens) Verify(tokenString string) Verification {
	if tokenString == "" {
		return Verification{Status: TokenInvalid}
	}

	claims := Claims{}
	token, err := t.parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return Verification{Status: TokenInvalid}
	}
	if claims.UserID == "" || claims.ExpiresAt == nil {
		return Verification{Status: TokenInvalid}
	}
	if !t.now().Before(claims.ExpiresAt.Time) {
		return Verification{Status: TokenExpired}
	}
	return Verification{Status: TokenValid, Claims: claims}
}
