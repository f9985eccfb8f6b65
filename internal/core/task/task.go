// Package task defines the task domain model for group-chat task tracking.
package task

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority matches a raw value against the known priorities,
// case-insensitively. The second return is false for unknown values.
func ParsePriority(raw string) (Priority, bool) {
	switch Priority(strings.ToLower(strings.TrimSpace(raw))) {
	case PriorityLow:
		return PriorityLow, true
	case PriorityMedium:
		return PriorityMedium, true
	case PriorityHigh:
		return PriorityHigh, true
	default:
		return "", false
	}
}

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// Task represents a single tracked work item within a chat.
//
// Tasks are chat-local: IDs are unique and monotonically increasing within
// one chat and carry no meaning across chats. A task is never deleted;
// closing flips Status to done and the record remains queryable history.
type Task struct {
	ID          int64     `json:"id"`
	ChatID      int64     `json:"chat_id"`
	Title       string    `json:"title"`
	Assignee    string    `json:"assignee"` // bare handle, no leading "@"
	DueDate     Date      `json:"due_date"`
	Priority    Priority  `json:"priority"`
	Tags        []string  `json:"tags,omitempty"`
	Status      Status    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at,omitzero"`
}

// Open returns true if the task has not been closed yet.
func (t *Task) Open() bool {
	return t.Status == StatusOpen
}

// MarkDone transitions the task to the done status.
func (t *Task) MarkDone(now time.Time) {
	t.Status = StatusDone
	t.CompletedAt = now
}

// CreateRequest is the validated output of parsing a /newtask command.
// It carries no ID; the store assigns one at creation time.
type CreateRequest struct {
	Title    string
	Assignee string // bare handle, no leading "@"
	DueDate  Date
	Priority Priority
	Tags     []string // trimmed, deduplicated, sorted
}

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD). Impossible dates
// such as 2026-02-30 are rejected.
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return Date{}, err
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// String renders the date back in YYYY-MM-DD form.
func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

// IsZero returns true for the zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string into the date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// NormalizeTags trims, drops empties, deduplicates, and sorts a tag list.
// A nil or all-blank input yields an empty set.
func NormalizeTags(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
