package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"taskboard/internal/auth"
	"taskboard/internal/gateway"
	"taskboard/internal/middleware"
)

func (h *Handler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL / time.Second),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req gateway.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, "register", err)
	}

	session, err := h.gw.Register(req)
	if err != nil {
		return failWith(c, err)
	}

	h.setSessionCookie(c, session.Token)
	return respond(c, fiber.StatusCreated, "User created successfully", fiber.Map{"user": session.User})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req gateway.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, "login", err)
	}

	session, err := h.gw.Login(req)
	if err != nil {
		return failWith(c, err)
	}

	h.setSessionCookie(c, session.Token)
	return respond(c, fiber.StatusOK, "Login success", fiber.Map{"user": session.User})
}

// Logout only drops the cookie; the token itself stays valid until it
// expires.
func (h *Handler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)
	return respond(c, fiber.StatusOK, "Logged out", nil)
}

func (h *Handler) Me(c *fiber.Ctx) error {
	user, err := h.gw.Me(middleware.Token(c))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "Session active", fiber.Map{"user": user})
}
