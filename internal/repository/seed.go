package repository

import (
	"taskboard/internal/models"
)

// Seed installs the starter workspace for a new user, replacing whatever
// collection the user had.
func (s *BoardStore) Seed(userID string) {
	s.ReplaceBoards(userID, DefaultBoards(userID))
}

// DefaultBoards is the demo workspace every account starts with. Ids are
// derived from the user id so they never collide with generated ones.
func DefaultBoards(userID string) []models.Board {
	return []models.Board{
		{
			ID:    userID + "-1",
			Title: "Groceries 🛒",
			Color: "bg-emerald-100",
			Tasks: []models.Task{
				{
					ID:          userID + "-task-1",
					Title:       "Buy fresh vegetables 🥕",
					Description: "Carrots, broccoli, and spinach",
					DueDate:     "2025-08-10T18:00",
					Priority:    models.PriorityHigh,
					CreatedAt:   "2025-08-09",
				},
				{
					ID:        userID + "-task-2",
					Title:     "Get milk and eggs 🥛",
					DueDate:   "2025-08-11T10:30",
					Priority:  models.PriorityMedium,
					CreatedAt: "2025-08-09",
				},
			},
		},
		{
			ID:    userID + "-2",
			Title: "Work 💼",
			Color: "bg-sky-100",
			Tasks: []models.Task{
				{
					ID:          userID + "-task-3",
					Title:       "Finish quarterly report 📊",
					Description: "Complete Q3 performance analysis",
					DueDate:     "2025-08-12T17:00",
					Priority:    models.PriorityHigh,
					CreatedAt:   "2025-08-08",
				},
			},
		},
		{
			ID:    userID + "-3",
			Title: "Learning 📚",
			Color: "bg-violet-100",
			Tasks: []models.Task{
				{
					ID:          userID + "-task-4",
					Title:       "Complete React course chapter 5 ⚛️",
					Description: "Learn about hooks and state management",
					DueDate:     "2025-08-15T14:30",
					Priority:    models.PriorityMedium,
					CreatedAt:   "2025-08-09",
				},
			},
		},
	}
}
