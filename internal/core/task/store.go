package task

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a task ID does not exist within the chat.
	ErrNotFound = errors.New("task not found")
	// ErrAlreadyClosed is returned when closing a task that is already done.
	ErrAlreadyClosed = errors.New("task already closed")
)

// Store defines the interface for task persistence.
//
// All operations are scoped by chat ID: no two chats share task IDs, and a
// query for one chat never returns another chat's tasks.
type Store interface {
	// Create builds a task from the request, assigns the next ID for the
	// chat (starting at 1, never reused), and inserts it with status open.
	Create(ctx context.Context, chatID int64, req CreateRequest, createdBy string) (Task, error)

	// ListOpen returns all open tasks in the chat, ordered by ID ascending.
	// Returns an empty slice when there are none.
	ListOpen(ctx context.Context, chatID int64) ([]Task, error)

	// ListByAssignee returns tasks of any status in the chat whose assignee
	// exactly matches handle (case-sensitive), ordered by ID ascending.
	ListByAssignee(ctx context.Context, chatID int64, handle string) ([]Task, error)

	// Close flips the task's status to done and returns the updated task.
	// Returns ErrNotFound if the ID does not exist in the chat, and
	// ErrAlreadyClosed if the task is already done.
	Close(ctx context.Context, chatID int64, id int64) (Task, error)
}
