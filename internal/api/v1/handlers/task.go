package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/internal/gateway"
	"taskboard/internal/middleware"
)

func (h *Handler) CreateTask(c *fiber.Ctx) error {
	var req gateway.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, "create task", err)
	}

	task, err := h.gw.CreateTask(middleware.Token(c), req)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, "Task created successfully", fiber.Map{"task": task})
}

// UpdateTask applies a partial update: fields absent from the body keep
// their value.
func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	var req gateway.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, "update task", err)
	}

	task, err := h.gw.UpdateTask(middleware.Token(c), req)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "Task updated successfully", fiber.Map{"task": task})
}

func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	req := gateway.DeleteTaskRequest{
		BoardID: c.Query("boardId"),
		TaskID:  c.Query("taskId"),
	}
	if err := h.gw.DeleteTask(middleware.Token(c), req); err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "Task deleted successfully", nil)
}
