package bot

import (
	"fmt"
	"strings"

	"github.com/colonyops/taskbee/internal/core/task"
)

// FormatTask renders one task as a multi-line chat message block.
func FormatTask(t task.Task) string {
	tags := "-"
	if len(t.Tags) > 0 {
		tags = strings.Join(t.Tags, ", ")
	}

	status := "🟡 open"
	if t.Status == task.StatusDone {
		status = "✅ done"
	}

	return fmt.Sprintf(
		"#%d %s\n👤 @%s | ⏰ %s | ⚡ %s\n🏷 %s\nStatus: %s",
		t.ID, t.Title, t.Assignee, t.DueDate, t.Priority, tags, status,
	)
}

// FormatTasks renders a task list, one block per task separated by blank lines.
func FormatTasks(tasks []task.Task) string {
	blocks := make([]string, 0, len(tasks))
	for _, t := range tasks {
		blocks = append(blocks, FormatTask(t))
	}
	return strings.Join(blocks, "\n\n")
}
