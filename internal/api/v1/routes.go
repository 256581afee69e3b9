package v1

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/internal/api/v1/handlers"
	"taskboard/internal/middleware"
)

func RegisterRoutes(app *fiber.App, h *handlers.Handler, authn middleware.Authenticator) {
	api := app.Group("/api/v1")
	requireSession := middleware.UseToken(authn)

	// Auth
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", h.Register)
	authRoutes.Post("/login", h.Login)
	authRoutes.Post("/logout", h.Logout)
	authRoutes.Get("/me", requireSession, h.Me)

	// Boards
	boardRoutes := api.Group("/boards", requireSession)
	boardRoutes.Get("/", h.ListBoards)
	boardRoutes.Post("/", h.CreateBoard)
	boardRoutes.Put("/:boardId", h.UpdateBoard)
	boardRoutes.Delete("/:boardId", h.DeleteBoard)

	// Tasks
	taskRoutes := api.Group("/tasks", requireSession)
	taskRoutes.Post("/", h.CreateTask)
	taskRoutes.Put("/", h.UpdateTask)
	taskRoutes.Delete("/", h.DeleteTask)

	// Live events
	api.Get("/ws", requireSession, h.WebsocketUpgrade, h.Events())
}
