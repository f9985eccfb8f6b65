// Package stores provides store implementations for the task domain.
package stores

import (
	"context"
	"sync"
	"time"

	"github.com/colonyops/taskbee/internal/core/task"
)

// TaskStore implements task.Store with an in-memory, per-chat registry.
//
// State lives for the process lifetime only. A single mutex guards all chats;
// command volume is low enough that per-chat locking would buy nothing.
type TaskStore struct {
	mu    sync.Mutex
	chats map[int64]*chatTasks
	now   func() time.Time
}

var _ task.Store = (*TaskStore)(nil)

// chatTasks holds one chat's tasks in insertion (ID) order.
type chatTasks struct {
	seq   int64
	tasks []task.Task
	byID  map[int64]int // task ID -> index into tasks
}

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		chats: make(map[int64]*chatTasks),
		now:   time.Now,
	}
}

// Create assigns the next ID for the chat and inserts an open task.
func (s *TaskStore) Create(ctx context.Context, chatID int64, req task.CreateRequest, createdBy string) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct := s.chats[chatID]
	if ct == nil {
		ct = &chatTasks{byID: make(map[int64]int)}
		s.chats[chatID] = ct
	}

	ct.seq++
	t := task.Task{
		ID:        ct.seq,
		ChatID:    chatID,
		Title:     req.Title,
		Assignee:  req.Assignee,
		DueDate:   req.DueDate,
		Priority:  req.Priority,
		Tags:      req.Tags,
		Status:    task.StatusOpen,
		CreatedBy: createdBy,
		CreatedAt: s.now(),
	}

	ct.byID[t.ID] = len(ct.tasks)
	ct.tasks = append(ct.tasks, t)

	return t, nil
}

// ListOpen returns the chat's open tasks, ID ascending.
func (s *TaskStore) ListOpen(ctx context.Context, chatID int64) ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter(chatID, func(t task.Task) bool {
		return t.Status == task.StatusOpen
	}), nil
}

// ListByAssignee returns the chat's tasks for an exact handle match, any
// status, ID ascending.
func (s *TaskStore) ListByAssignee(ctx context.Context, chatID int64, handle string) ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter(chatID, func(t task.Task) bool {
		return t.Assignee == handle
	}), nil
}

// Close flips a task to done. The store is left untouched on failure.
func (s *TaskStore) Close(ctx context.Context, chatID int64, id int64) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct := s.chats[chatID]
	if ct == nil {
		return task.Task{}, task.ErrNotFound
	}

	idx, ok := ct.byID[id]
	if !ok {
		return task.Task{}, task.ErrNotFound
	}

	t := &ct.tasks[idx]
	if t.Status == task.StatusDone {
		return task.Task{}, task.ErrAlreadyClosed
	}

	t.MarkDone(s.now())
	return *t, nil
}

// filter returns copies of the chat's tasks matching keep, in stored order.
// Callers must hold s.mu.
func (s *TaskStore) filter(chatID int64, keep func(task.Task) bool) []task.Task {
	out := []task.Task{}
	ct := s.chats[chatID]
	if ct == nil {
		return out
	}
	for _, t := range ct.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
