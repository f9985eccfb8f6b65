package bot

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskbee/internal/core/chat"
	"github.com/colonyops/taskbee/internal/data/stores"
)

func newTestRouter() *Router {
	return NewRouter(stores.NewTaskStore(), zerolog.Nop())
}

func update(text string) chat.Update {
	return chat.Update{ChatID: 100, Sender: "ivan", Text: text}
}

func TestRouter_Handle_NewTask(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and confirms with id", func(t *testing.T) {
		r := newTestRouter()

		reply, ok := r.Handle(ctx, update("/newtask Fix bug | @ivan | 2026-02-20 | high | backend,release"))
		require.True(t, ok)
		assert.Equal(t, "Task created: #1", reply)

		reply, ok = r.Handle(ctx, update("/newtask Next | @dana | 2026-02-21 | low | "))
		require.True(t, ok)
		assert.Equal(t, "Task created: #2", reply)
	})

	t.Run("no arguments replies with usage", func(t *testing.T) {
		r := newTestRouter()

		reply, ok := r.Handle(ctx, update("/newtask"))
		require.True(t, ok)
		assert.Contains(t, reply, "Usage:")
	})

	t.Run("wrong arity names expected format", func(t *testing.T) {
		r := newTestRouter()

		reply, ok := r.Handle(ctx, update("/newtask OnlyTitle | @ivan"))
		require.True(t, ok)
		assert.Contains(t, reply, "expected 5 fields")
		assert.Contains(t, reply, "/newtask Title | @assignee")
	})

	t.Run("field errors name the field problem", func(t *testing.T) {
		r := newTestRouter()

		tests := []struct {
			text string
			want string
		}{
			{"/newtask Fix | ivan | 2026-02-20 | high | ", "assignee must start with @"},
			{"/newtask Fix | @ivan | 2026-02-30 | high | ", "due date must be a valid"},
			{"/newtask Fix | @ivan | 2026-02-20 | urgent | ", "priority must be one of"},
			{"/newtask  | @ivan | 2026-02-20 | high | ", "title must not be empty"},
		}
		for _, tt := range tests {
			reply, ok := r.Handle(ctx, update(tt.text))
			require.True(t, ok)
			assert.Contains(t, reply, tt.want, "command %q", tt.text)
		}
	})

	t.Run("bad command does not reach the store", func(t *testing.T) {
		r := newTestRouter()

		_, ok := r.Handle(ctx, update("/newtask Fix | @ivan | garbage | high | "))
		require.True(t, ok)

		reply, ok := r.Handle(ctx, update("/tasks"))
		require.True(t, ok)
		assert.Equal(t, "No open tasks 🎉", reply)
	})
}

func TestRouter_Handle_Tasks(t *testing.T) {
	ctx := context.Background()

	t.Run("empty chat", func(t *testing.T) {
		r := newTestRouter()

		reply, ok := r.Handle(ctx, update("/tasks"))
		require.True(t, ok)
		assert.Equal(t, "No open tasks 🎉", reply)
	})

	t.Run("lists open tasks only", func(t *testing.T) {
		r := newTestRouter()

		_, _ = r.Handle(ctx, update("/newtask First | @ivan | 2026-02-20 | high | backend"))
		_, _ = r.Handle(ctx, update("/newtask Second | @dana | 2026-02-21 | low | "))
		_, _ = r.Handle(ctx, update("/done 1"))

		reply, ok := r.Handle(ctx, update("/tasks"))
		require.True(t, ok)
		assert.NotContains(t, reply, "First")
		assert.Contains(t, reply, "#2 Second")
	})

	t.Run("chats do not see each other", func(t *testing.T) {
		r := newTestRouter()

		_, _ = r.Handle(ctx, update("/newtask Secret | @ivan | 2026-02-20 | high | "))

		reply, ok := r.Handle(ctx, chat.Update{ChatID: 200, Sender: "ivan", Text: "/tasks"})
		require.True(t, ok)
		assert.Equal(t, "No open tasks 🎉", reply)
	})
}

func TestRouter_Handle_MyTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("no tasks for sender", func(t *testing.T) {
		r := newTestRouter()

		_, _ = r.Handle(ctx, update("/newtask For dana | @dana | 2026-02-20 | low | "))

		reply, ok := r.Handle(ctx, update("/mytasks"))
		require.True(t, ok)
		assert.Equal(t, "You have no tasks.", reply)
	})

	t.Run("includes closed tasks assigned to sender", func(t *testing.T) {
		r := newTestRouter()

		_, _ = r.Handle(ctx, update("/newtask Mine | @ivan | 2026-02-20 | low | "))
		_, _ = r.Handle(ctx, update("/done 1"))

		reply, ok := r.Handle(ctx, update("/mytasks"))
		require.True(t, ok)
		assert.Contains(t, reply, "#1 Mine")
		assert.Contains(t, reply, "✅ done")
	})

	t.Run("handle match is case-sensitive", func(t *testing.T) {
		r := newTestRouter()

		_, _ = r.Handle(ctx, update("/newtask Other casing | @Ivan | 2026-02-20 | low | "))

		reply, ok := r.Handle(ctx, update("/mytasks"))
		require.True(t, ok)
		assert.Equal(t, "You have no tasks.", reply)
	})
}

func TestRouter_Handle_Done(t *testing.T) {
	ctx := context.Background()

	t.Run("closes an open task", func(t *testing.T) {
		r := newTestRouter()

		_, _ = r.Handle(ctx, update("/newtask Fix | @ivan | 2026-02-20 | high | "))

		reply, ok := r.Handle(ctx, update("/done 1"))
		require.True(t, ok)
		assert.Equal(t, "Task #1 closed ✅", reply)
	})

	t.Run("second close reports already closed", func(t *testing.T) {
		r := newTestRouter()

		_, _ = r.Handle(ctx, update("/newtask Fix | @ivan | 2026-02-20 | high | "))
		_, _ = r.Handle(ctx, update("/done 1"))

		reply, ok := r.Handle(ctx, update("/done 1"))
		require.True(t, ok)
		assert.Equal(t, "Task #1 is already closed.", reply)
	})

	t.Run("unknown id", func(t *testing.T) {
		r := newTestRouter()

		reply, ok := r.Handle(ctx, update("/done 42"))
		require.True(t, ok)
		assert.Equal(t, "Task not found.", reply)
	})

	t.Run("non-numeric id replies with usage", func(t *testing.T) {
		r := newTestRouter()

		for _, text := range []string{"/done", "/done abc", "/done -1"} {
			reply, ok := r.Handle(ctx, update(text))
			require.True(t, ok)
			assert.Equal(t, "Usage: /done ID", reply, "command %q", text)
		}
	})
}

func TestRouter_Handle_Misc(t *testing.T) {
	ctx := context.Background()

	t.Run("help and start show command summary", func(t *testing.T) {
		r := newTestRouter()

		for _, text := range []string{"/help", "/start"} {
			reply, ok := r.Handle(ctx, update(text))
			require.True(t, ok)
			assert.Contains(t, reply, "/newtask")
			assert.Contains(t, reply, "/done ID")
		}
	})

	t.Run("bot mention suffix is stripped", func(t *testing.T) {
		r := newTestRouter()

		reply, ok := r.Handle(ctx, update("/tasks@taskbee_bot"))
		require.True(t, ok)
		assert.Equal(t, "No open tasks 🎉", reply)
	})

	t.Run("plain text is ignored", func(t *testing.T) {
		r := newTestRouter()

		_, ok := r.Handle(ctx, update("good morning everyone"))
		assert.False(t, ok)
	})

	t.Run("unknown command points at help", func(t *testing.T) {
		r := newTestRouter()

		reply, ok := r.Handle(ctx, update("/frobnicate"))
		require.True(t, ok)
		assert.Contains(t, reply, "/help")
	})
}
