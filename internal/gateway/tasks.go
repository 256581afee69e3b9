package gateway

import (
	"go.uber.org/zap"

	"taskboard/internal/auth"
	"taskboard/internal/models"
	"taskboard/pkg/logger"
)

// CreateTask adds an open task to one of the caller's boards. Priority
// defaults to medium.
func (g *Gateway) CreateTask(token string, req CreateTaskRequest) (models.Task, error) {
	claims, err := g.Authenticate(token)
	if err != nil {
		return models.Task{}, err
	}
	if err := g.check(req); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:          auth.NewID(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		CreatedAt:   g.today(),
		Completed:   false,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	if !g.boards.AddTask(claims.UserID, req.BoardID, task) {
		return models.Task{}, notFound("Board not found")
	}

	logger.AuditLogger.Info("Task created", zap.String("user_id", claims.UserID), zap.String("board_id", req.BoardID), zap.String("task_id", task.ID))
	g.publish(claims.UserID, models.EventTaskCreated, req.BoardID, task.ID)
	return task, nil
}

// UpdateTask merges the supplied fields into the stored task. The merge
// runs under the owner's store lock, so concurrent patches never clobber
// each other's fields.
func (g *Gateway) UpdateTask(token string, req UpdateTaskRequest) (models.Task, error) {
	claims, err := g.Authenticate(token)
	if err != nil {
		return models.Task{}, err
	}
	if err := g.check(req); err != nil {
		return models.Task{}, err
	}

	task, ok := g.boards.UpdateTask(claims.UserID, req.BoardID, req.TaskID, func(t *models.Task) {
		if req.Title != nil {
			t.Title = *req.Title
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		if req.DueDate != nil {
			t.DueDate = *req.DueDate
		}
		if req.Priority != nil {
			t.Priority = *req.Priority
		}
		if req.Completed != nil {
			t.Completed = *req.Completed
		}
	})
	if !ok {
		return models.Task{}, notFound("Task not found")
	}

	logger.AuditLogger.Info("Task updated", zap.String("user_id", claims.UserID), zap.String("task_id", task.ID))
	g.publish(claims.UserID, models.EventTaskUpdated, req.BoardID, task.ID)
	return task, nil
}

// DeleteTask removes the task. Absent boards and tasks are not an error.
func (g *Gateway) DeleteTask(token string, req DeleteTaskRequest) error {
	claims, err := g.Authenticate(token)
	if err != nil {
		return err
	}
	if err := g.check(req); err != nil {
		return err
	}

	if g.boards.DeleteTask(claims.UserID, req.BoardID, req.TaskID) {
		logger.AuditLogger.Info("Task deleted", zap.String("user_id", claims.UserID), zap.String("task_id", req.TaskID))
		g.publish(claims.UserID, models.EventTaskDeleted, req.BoardID, req.TaskID)
	}
	return nil
}
