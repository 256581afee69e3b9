package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskboard/internal/gateway"
	myws "taskboard/internal/websocket"
	"taskboard/pkg/logger"
)

// Handler maps HTTP requests onto gateway operations.
type Handler struct {
	gw            *gateway.Gateway
	hub           *myws.Hub
	secureCookies bool
}

func New(gw *gateway.Gateway, hub *myws.Hub, secureCookies bool) *Handler {
	return &Handler{gw: gw, hub: hub, secureCookies: secureCookies}
}

func respond(c *fiber.Ctx, status int, message string, data fiber.Map) error {
	body := fiber.Map{
		"message": message,
		"success": true,
		"status":  status,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"success": false,
		"status":  status,
	})
}

// failWith renders err. Gateway errors carry their own status and message;
// anything else is logged and reported as a generic 500.
func failWith(c *fiber.Ctx, err error) error {
	var gerr *gateway.Error
	if errors.As(err, &gerr) {
		if gerr.Status >= fiber.StatusInternalServerError {
			logger.ErrorLogger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
		}
		return fail(c, gerr.Status, gerr.Message)
	}
	logger.ErrorLogger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}

func badBody(c *fiber.Ctx, op string, err error) error {
	logger.ErrorLogger.Error("Bad request in "+op, zap.Error(err))
	return fail(c, fiber.StatusBadRequest, "Bad request")
}
