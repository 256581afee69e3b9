package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"taskboard/internal/middleware"
	myws "taskboard/internal/websocket"
)

const wsUserKey = "wsUserID"

// WebsocketUpgrade lets websocket handshakes through and carries the
// authenticated user id into the connection.
func (h *Handler) WebsocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fail(c, fiber.StatusUpgradeRequired, "Upgrade required")
	}
	c.Locals(wsUserKey, middleware.UserID(c))
	return c.Next()
}

// Events streams the caller's board and task events until the client
// disconnects. Incoming messages are read and discarded.
func (h *Handler) Events() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals(wsUserKey).(string)
		client := myws.NewClient(userID, conn)
		if !h.hub.Register(client) {
			conn.Close()
			return
		}
		defer h.hub.Unregister(client)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
