package gateway

import (
	"errors"

	"go.uber.org/zap"

	"taskboard/internal/auth"
	"taskboard/internal/models"
	"taskboard/internal/repository"
	"taskboard/pkg/logger"
)

// Session is what a successful register or login hands back: the public
// view of the user and a freshly issued token for the transport to attach.
type Session struct {
	User  models.UserSummary
	Token string
}

// Register creates an account with its starter workspace and opens a
// session for it.
func (g *Gateway) Register(req RegisterRequest) (Session, error) {
	if err := g.check(req); err != nil {
		return Session{}, err
	}
	if !auth.ValidateEmail(req.Email) {
		return Session{}, badRequest("Invalid email format")
	}
	if pc := auth.ValidatePassword(req.Password); !pc.Valid {
		return Session{}, badRequest(pc.Reason)
	}
	if _, exists := g.users.GetUserByEmail(req.Email); exists {
		logger.SecurityLogger.Warn("Duplicate email at registration", zap.String("email", req.Email))
		return Session{}, conflict("User with this email already exists")
	}

	// Hashing is slow on purpose and runs before any store lock is taken.
	hash, err := g.passwords.Hash(req.Password)
	if err != nil {
		logger.ErrorLogger.Error("Error hashing password", zap.Error(err))
		return Session{}, internal(err)
	}

	user := models.User{
		ID:           auth.NewUserID(),
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CreatedAt:    g.now().UTC(),
	}
	if err := g.users.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			logger.SecurityLogger.Warn("Duplicate email at registration", zap.String("email", req.Email))
			return Session{}, conflict("User with this email already exists")
		}
		logger.ErrorLogger.Error("Error creating user", zap.Error(err))
		return Session{}, internal(err)
	}

	token, err := g.tokens.Issue(user.ID, user.Email)
	if err != nil {
		logger.ErrorLogger.Error("Error generating token", zap.Error(err))
		return Session{}, internal(err)
	}

	logger.AuditLogger.Info("User registered successfully", zap.String("user_id", user.ID))
	return Session{User: user.Summary(), Token: token}, nil
}

// Login checks the credentials and opens a new session. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (g *Gateway) Login(req LoginRequest) (Session, error) {
	if err := g.check(req); err != nil {
		return Session{}, err
	}

	user, ok := g.users.GetUserByEmail(req.Email)
	if !ok {
		g.passwords.Verify(req.Password, g.dummyHash())
		logger.SecurityLogger.Warn("Login for unknown email", zap.String("email", req.Email))
		return Session{}, errInvalidCreds
	}
	if !g.passwords.Verify(req.Password, user.PasswordHash) {
		logger.SecurityLogger.Warn("Invalid password", zap.String("user_id", user.ID))
		return Session{}, errInvalidCreds
	}

	token, err := g.tokens.Issue(user.ID, user.Email)
	if err != nil {
		logger.ErrorLogger.Error("Error generating token", zap.Error(err))
		return Session{}, internal(err)
	}

	logger.AuditLogger.Info("Login success", zap.String("user_id", user.ID))
	return Session{User: user.Summary(), Token: token}, nil
}

// Me returns the user behind token. A valid token whose user is unknown to
// this process yields 404.
func (g *Gateway) Me(token string) (models.UserSummary, error) {
	claims, err := g.Authenticate(token)
	if err != nil {
		return models.UserSummary{}, err
	}

	user, ok := g.users.GetUserByID(claims.UserID)
	if !ok {
		return models.UserSummary{}, notFound("User not found")
	}
	return user.Summary(), nil
}
