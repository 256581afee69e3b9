package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/internal/gateway"
	"taskboard/internal/middleware"
)

func (h *Handler) ListBoards(c *fiber.Ctx) error {
	boards, err := h.gw.ListBoards(middleware.Token(c))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "Boards retrieved successfully", fiber.Map{"boards": boards})
}

func (h *Handler) CreateBoard(c *fiber.Ctx) error {
	var req gateway.CreateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, "create board", err)
	}

	board, err := h.gw.CreateBoard(middleware.Token(c), req)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, "Board created successfully", fiber.Map{"board": board})
}

// UpdateBoard takes the board id from the path; a boardId in the body is
// ignored.
func (h *Handler) UpdateBoard(c *fiber.Ctx) error {
	var req gateway.UpdateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, "update board", err)
	}
	req.BoardID = c.Params("boardId")

	board, err := h.gw.UpdateBoard(middleware.Token(c), req)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "Board updated successfully", fiber.Map{"board": board})
}

func (h *Handler) DeleteBoard(c *fiber.Ctx) error {
	if err := h.gw.DeleteBoard(middleware.Token(c), c.Params("boardId")); err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "Board deleted successfully", nil)
}
