package gateway

import (
	"go.uber.org/zap"

	"taskboard/internal/auth"
	"taskboard/internal/models"
	"taskboard/pkg/logger"
)

func (g *Gateway) ListBoards(token string) ([]models.Board, error) {
	claims, err := g.Authenticate(token)
	if err != nil {
		return nil, err
	}
	return g.boards.GetBoards(claims.UserID), nil
}

func (g *Gateway) CreateBoard(token string, req CreateBoardRequest) (models.Board, error) {
	claims, err := g.Authenticate(token)
	if err != nil {
		return models.Board{}, err
	}
	if err := g.check(req); err != nil {
		return models.Board{}, err
	}

	board := models.Board{
		ID:    auth.NewID(),
		Title: req.Title,
		Color: req.Color,
		Tasks: []models.Task{},
	}
	g.boards.AddBoard(claims.UserID, board)

	logger.AuditLogger.Info("Board created", zap.String("user_id", claims.UserID), zap.String("board_id", board.ID))
	g.publish(claims.UserID, models.EventBoardCreated, board.ID, "")
	return board, nil
}

func (g *Gateway) UpdateBoard(token string, req UpdateBoardRequest) (models.Board, error) {
	claims, err := g.Authenticate(token)
	if err != nil {
		return models.Board{}, err
	}
	if err := g.check(req); err != nil {
		return models.Board{}, err
	}

	board, ok := g.boards.UpdateBoard(claims.UserID, req.BoardID, func(b *models.Board) {
		b.Title = req.Title
		b.Color = req.Color
	})
	if !ok {
		return models.Board{}, notFound("Board not found")
	}

	logger.AuditLogger.Info("Board updated", zap.String("user_id", claims.UserID), zap.String("board_id", board.ID))
	g.publish(claims.UserID, models.EventBoardUpdated, board.ID, "")
	return board, nil
}

// DeleteBoard removes the board and its tasks. Deleting an absent board
// succeeds.
func (g *Gateway) DeleteBoard(token, boardID string) error {
	claims, err := g.Authenticate(token)
	if err != nil {
		return err
	}
	if boardID == "" {
		return badRequest("boardId is required")
	}

	if g.boards.DeleteBoard(claims.UserID, boardID) {
		logger.AuditLogger.Info("Board deleted", zap.String("user_id", claims.UserID), zap.String("board_id", boardID))
		g.publish(claims.UserID, models.EventBoardDeleted, boardID, "")
	}
	return nil
}
