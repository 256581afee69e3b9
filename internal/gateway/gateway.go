// Package gateway is the request boundary of the task board service. Every
// operation authenticates the session token first and then works strictly
// inside the token owner's data; callers can never name another user.
package gateway

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"taskboard/internal/auth"
	"taskboard/internal/models"
	"taskboard/internal/repository"
	"taskboard/pkg/logger"
)

// Publisher receives a notification after every successful mutation.
type Publisher interface {
	Publish(userID string, ev models.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, models.Event) {}

type Gateway struct {
	users     *repository.UserStore
	boards    *repository.BoardStore
	passwords *auth.Passwords
	tokens    *auth.Tokens
	validate  *validator.Validate
	events    Publisher
	now       func() time.Time

	dummyOnce sync.Once
	dummy     string
}

func New(users *repository.UserStore, boards *repository.BoardStore, passwords *auth.Passwords, tokens *auth.Tokens, validate *validator.Validate) *Gateway {
	if validate == nil {
		validate = NewValidator()
	}
	return &Gateway{
		users:     users,
		boards:    boards,
		passwords: passwords,
		tokens:    tokens,
		validate:  validate,
		events:    nopPublisher{},
		now:       time.Now,
	}
}

func (g *Gateway) WithPublisher(p Publisher) *Gateway {
	if p == nil {
		p = nopPublisher{}
	}
	g.events = p
	return g
}

func (g *Gateway) WithClock(now func() time.Time) *Gateway {
	g.now = now
	return g
}

// Authenticate turns a session token into its claims. Missing, malformed,
// tampered and expired tokens all come back as the same 401 so a caller
// cannot tell which one it sent.
func (g *Gateway) Authenticate(token string) (auth.Claims, error) {
	if token == "" {
		return auth.Claims{}, errNoToken
	}

	v := g.tokens.Verify(token)
	if !v.Valid() {
		logger.SecurityLogger.Warn("Rejected session token", zap.String("status", v.Status.String()))
		return auth.Claims{}, errInvalidToken
	}
	return v.Claims, nil
}

func (g *Gateway) publish(userID, typ, boardID, taskID string) {
	g.events.Publish(userID, models.Event{Type: typ, BoardID: boardID, TaskID: taskID})
}

// dummyHash is compared against on logins for unknown emails so both paths
// pay for one bcrypt comparison.
func (g *Gateway) dummyHash() string {
	g.dummyOnce.Do(func() {
		h, err := g.passwords.Hash("not-a-real-password")
		if err != nil {
			logger.ErrorLogger.Error("Error hashing dummy password", zap.Error(err))
			return
		}
		g.dummy = h
	})
	return g.dummy
}

func (g *Gateway) today() string {
	return g.now().UTC().Format(time.DateOnly)
}
