// Package bot dispatches chat commands to the task store and renders replies.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/taskbee/internal/core/chat"
	"github.com/colonyops/taskbee/internal/core/task"
)

const newtaskUsage = "Usage:\n/newtask Title | @assignee | YYYY-MM-DD | low|medium|high | tag1,tag2"

const helpText = `Hi! I'm a small task tracker for your team.

Commands:
- /newtask Title | @assignee | YYYY-MM-DD | low|medium|high | tag1,tag2
- /tasks — all open tasks in this chat
- /mytasks — tasks assigned to you
- /done ID — close a task
- /help — this message`

// Router handles one inbound update at a time: parse, apply to the store,
// render a reply. A bad command never reaches the store; store errors are
// surfaced as replies, never as process failures.
type Router struct {
	store task.Store
	log   zerolog.Logger
}

// NewRouter creates a new command router.
func NewRouter(store task.Store, log zerolog.Logger) *Router {
	return &Router{
		store: store,
		log:   log.With().Str("component", "router").Logger(),
	}
}

// Run consumes updates from the transport until the context is cancelled or
// the update stream ends. Updates are processed strictly sequentially.
func (r *Router) Run(ctx context.Context, transport chat.Transport) error {
	updates, err := transport.Updates(ctx)
	if err != nil {
		return fmt.Errorf("open update stream: %w", err)
	}

	r.log.Info().Msg("bot started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case up, ok := <-updates:
			if !ok {
				return nil
			}
			r.process(ctx, transport, up)
		}
	}
}

func (r *Router) process(ctx context.Context, transport chat.Transport, up chat.Update) {
	log := r.log.With().
		Str("update_id", uuid.NewString()).
		Int64("chat_id", up.ChatID).
		Str("sender", up.Sender).
		Logger()

	reply, ok := r.Handle(ctx, up)
	if !ok {
		return
	}

	log.Debug().Str("command", commandWord(up.Text)).Msg("handled command")

	if err := transport.Send(ctx, up.ChatID, reply); err != nil {
		log.Error().Err(err).Msg("send reply")
	}
}

// Handle processes a single update and returns the reply text. The second
// return is false when the update needs no reply (plain chat messages).
func (r *Router) Handle(ctx context.Context, up chat.Update) (string, bool) {
	text := strings.TrimSpace(up.Text)
	if !strings.HasPrefix(text, "/") {
		return "", false
	}

	command, args, _ := strings.Cut(text, " ")
	// In group chats platforms address commands as /cmd@botname.
	command, _, _ = strings.Cut(command, "@")
	args = strings.TrimSpace(args)

	switch command {
	case "/start", "/help":
		return helpText, true
	case "/newtask":
		return r.handleNewTask(ctx, up, args), true
	case "/tasks":
		return r.handleTasks(ctx, up), true
	case "/mytasks":
		return r.handleMyTasks(ctx, up), true
	case "/done":
		return r.handleDone(ctx, up, args), true
	default:
		return "Unknown command. Try /help.", true
	}
}

func (r *Router) handleNewTask(ctx context.Context, up chat.Update, args string) string {
	if args == "" {
		return newtaskUsage
	}

	req, err := task.ParseCreate(args)
	if err != nil {
		return parseErrorReply(err)
	}

	created, err := r.store.Create(ctx, up.ChatID, req, up.Sender)
	if err != nil {
		r.log.Error().Err(err).Int64("chat_id", up.ChatID).Msg("create task")
		return "Something went wrong, the task was not created."
	}

	return fmt.Sprintf("Task created: #%d", created.ID)
}

func (r *Router) handleTasks(ctx context.Context, up chat.Update) string {
	open, err := r.store.ListOpen(ctx, up.ChatID)
	if err != nil {
		r.log.Error().Err(err).Int64("chat_id", up.ChatID).Msg("list open tasks")
		return "Something went wrong, could not list tasks."
	}

	if len(open) == 0 {
		return "No open tasks 🎉"
	}
	return FormatTasks(open)
}

func (r *Router) handleMyTasks(ctx context.Context, up chat.Update) string {
	mine, err := r.store.ListByAssignee(ctx, up.ChatID, up.Sender)
	if err != nil {
		r.log.Error().Err(err).Int64("chat_id", up.ChatID).Msg("list tasks by assignee")
		return "Something went wrong, could not list tasks."
	}

	if len(mine) == 0 {
		return "You have no tasks."
	}
	return FormatTasks(mine)
}

func (r *Router) handleDone(ctx context.Context, up chat.Update, args string) string {
	id, err := task.ParseID(args)
	if err != nil {
		return "Usage: /done ID"
	}

	closed, err := r.store.Close(ctx, up.ChatID, id)
	switch {
	case errors.Is(err, task.ErrNotFound):
		return "Task not found."
	case errors.Is(err, task.ErrAlreadyClosed):
		return fmt.Sprintf("Task #%d is already closed.", id)
	case err != nil:
		r.log.Error().Err(err).Int64("chat_id", up.ChatID).Int64("task_id", id).Msg("close task")
		return "Something went wrong, the task was not closed."
	}

	return fmt.Sprintf("Task #%d closed ✅", closed.ID)
}

// parseErrorReply turns a parse failure into a user-facing message. The
// malformed-command case restates the expected format so the user can retry
// without reaching for /help.
func parseErrorReply(err error) string {
	var perr *task.ParseError
	if !errors.As(err, &perr) {
		return newtaskUsage
	}
	if perr.Kind == task.KindMalformed {
		return perr.Hint + "\n\n" + newtaskUsage
	}
	return perr.Hint + "."
}

func commandWord(text string) string {
	word, _, _ := strings.Cut(strings.TrimSpace(text), " ")
	return word
}
