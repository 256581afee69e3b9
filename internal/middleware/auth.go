package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"taskboard/internal/auth"
	"taskboard/internal/gateway"
)

// TokenCookie carries the session token for browser clients.
const TokenCookie = "auth-token"

const (
	tokenKey  = "token"
	userIDKey = "userID"
)

// Authenticator verifies a raw session token.
type Authenticator interface {
	Authenticate(token string) (auth.Claims, error)
}

// SessionTokens returns the tokens the request carries, in the order they
// are tried: the auth cookie first, then an "Authorization: Bearer" header.
func SessionTokens(c *fiber.Ctx) []string {
	var tokens []string
	if token := c.Cookies(TokenCookie); token != "" {
		tokens = append(tokens, token)
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		if token := strings.TrimSpace(parts[1]); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// UseToken authenticates the request before anything else looks at it and
// stores the accepted token and its user id in Locals. A cookie that fails
// verification does not hide a valid Bearer header.
func UseToken(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		candidates := SessionTokens(c)
		if len(candidates) == 0 {
			candidates = []string{""}
		}

		var err error
		for _, token := range candidates {
			var claims auth.Claims
			if claims, err = a.Authenticate(token); err == nil {
				c.Locals(tokenKey, token)
				c.Locals(userIDKey, claims.UserID)
				return c.Next()
			}
		}

		status, message := fiber.StatusUnauthorized, "Authentication required"
		var gerr *gateway.Error
		if errors.As(err, &gerr) {
			status, message = gerr.Status, gerr.Message
		}
		return c.Status(status).JSON(fiber.Map{
			"message": message,
			"success": false,
			"status":  status,
		})
	}
}

// Token returns the session token UseToken accepted for this request.
func Token(c *fiber.Ctx) string {
	token, _ := c.Locals(tokenKey).(string)
	return token
}

func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
