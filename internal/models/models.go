package models

import (
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// User is the stored account record. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserSummary is what clients get to see about an account.
type UserSummary struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

type Board struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
	Tasks []Task `json:"tasks"`
}

// Clone returns a copy of the board that shares no task storage with b.
func (b Board) Clone() Board {
	tasks := make([]Task, len(b.Tasks))
	copy(tasks, b.Tasks)
	b.Tasks = tasks
	return b
}

// Task belongs to exactly one board. DueDate is either a calendar date
// (2006-01-02) or a date-time; empty means no deadline. CreatedAt is the
// calendar date the task was created.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	Priority    Priority `json:"priority"`
	CreatedAt   string   `json:"createdAt"`
	Completed   bool     `json:"completed"`
}

// Event describes a change to a user's boards. It is pushed to the user's
// live connections only.
type Event struct {
	Type    string `json:"type"`
	BoardID string `json:"boardId,omitempty"`
	TaskID  string `json:"taskId,omitempty"`
}

const (
	EventBoardCreated = "board.created"
	EventBoardUpdated = "board.updated"
	EventBoardDeleted = "board.deleted"
	EventTaskCreated  = "task.created"
	EventTaskUpdated  = "task.updated"
	EventTaskDeleted  = "task.deleted"
)
