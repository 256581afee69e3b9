package repository

import (
	"sync"

	"taskboard/internal/models"
)

// BoardStore keeps every user's ordered board collection in memory.
//
// Each user key owns its own mutex, so read-modify-replace sequences for one
// user are strictly ordered while different users never contend. The map
// lock is only held long enough to find or create a user's entry.
type BoardStore struct {
	mu    sync.RWMutex
	users map[string]*userBoards
}

type userBoards struct {
	mu     sync.Mutex
	boards []models.Board
}

func NewBoardStore() *BoardStore {
	return &BoardStore{users: make(map[string]*userBoards)}
}

func (s *BoardStore) entry(userID string) *userBoards {
	s.mu.RLock()
	e, ok := s.users[userID]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.users[userID]; !ok {
		e = &userBoards{boards: []models.Board{}}
		s.users[userID] = e
	}
	return e
}

// mutate runs fn with the user's collection under the user's lock and
// stores whatever fn returns.
func (s *BoardStore) mutate(userID string, fn func(boards []models.Board) []models.Board) {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.boards = fn(e.boards)
}

// GetBoards returns a copy of the user's boards. Unknown users get an empty
// slice.
func (s *BoardStore) GetBoards(userID string) []models.Board {
	s.mu.RLock()
	e, ok := s.users[userID]
	s.mu.RUnlock()
	if !ok {
		return []models.Board{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneBoards(e.boards)
}

// ReplaceBoards swaps the user's whole collection in one step.
func (s *BoardStore) ReplaceBoards(userID string, boards []models.Board) {
	next := cloneBoards(boards)
	s.mutate(userID, func([]models.Board) []models.Board {
		return next
	})
}

// AddBoard appends board. The caller guarantees its id is unused.
func (s *BoardStore) AddBoard(userID string, board models.Board) {
	board = board.Clone()
	if board.Tasks == nil {
		board.Tasks = []models.Task{}
	}
	s.mutate(userID, func(boards []models.Board) []models.Board {
		return append(boards, board)
	})
}

// UpdateBoard applies fn to the board in place. It is a no-op reporting
// false when the user has no such board. fn must not change the board id.
func (s *BoardStore) UpdateBoard(userID, boardID string, fn func(b *models.Board)) (models.Board, bool) {
	var (
		updated models.Board
		found   bool
	)
	s.mutate(userID, func(boards []models.Board) []models.Board {
		i := indexBoard(boards, boardID)
		if i < 0 {
			return boards
		}
		fn(&boards[i])
		boards[i].ID = boardID
		updated, found = boards[i].Clone(), true
		return boards
	})
	return updated, found
}

// DeleteBoard removes the board and all of its tasks. Absent ids are a no-op.
func (s *BoardStore) DeleteBoard(userID, boardID string) bool {
	var found bool
	s.mutate(userID, func(boards []models.Board) []models.Board {
		i := indexBoard(boards, boardID)
		if i < 0 {
			return boards
		}
		found = true
		return append(boards[:i], boards[i+1:]...)
	})
	return found
}

// AddTask appends task to the board. It is a no-op when the board is absent.
func (s *BoardStore) AddTask(userID, boardID string, task models.Task) bool {
	var found bool
	s.mutate(userID, func(boards []models.Board) []models.Board {
		i := indexBoard(boards, boardID)
		if i < 0 {
			return boards
		}
		boards[i].Tasks = append(boards[i].Tasks, task)
		found = true
		return boards
	})
	return found
}

// UpdateTask applies fn to the task in its current position. fn must not
// change the task id.
func (s *BoardStore) UpdateTask(userID, boardID, taskID string, fn func(t *models.Task)) (models.Task, bool) {
	var (
		updated models.Task
		found   bool
	)
	s.mutate(userID, func(boards []models.Board) []models.Board {
		i := indexBoard(boards, boardID)
		if i < 0 {
			return boards
		}
		j := indexTask(boards[i].Tasks, taskID)
		if j < 0 {
			return boards
		}
		task := &boards[i].Tasks[j]
		fn(task)
		task.ID = taskID
		updated, found = *task, true
		return boards
	})
	return updated, found
}

// DeleteTask filters the task out of the board. Absent ids are a no-op.
func (s *BoardStore) DeleteTask(userID, boardID, taskID string) bool {
	var found bool
	s.mutate(userID, func(boards []models.Board) []models.Board {
		i := indexBoard(boards, boardID)
		if i < 0 {
			return boards
		}
		j := indexTask(boards[i].Tasks, taskID)
		if j < 0 {
			return boards
		}
		tasks := boards[i].Tasks
		boards[i].Tasks = append(tasks[:j], tasks[j+1:]...)
		found = true
		return boards
	})
	return found
}

func indexBoard(boards []models.Board, id string) int {
	for i := range boards {
		if boards[i].ID == id {
			return i
		}
	}
	return -1
}

func indexTask(tasks []models.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneBoards(boards []models.Board) []models.Board {
	out := make([]models.Board, len(boards))
	for i, b := range boards {
		out[i] = b.Clone()
		if out[i].Tasks == nil {
			out[i].Tasks = []models.Task{}
		}
	}
	return out
}
