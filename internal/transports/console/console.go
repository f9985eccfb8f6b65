// Package console implements chat.Transport over stdin/stdout for local
// development. Each input line is delivered as a message in one simulated
// chat; replies are printed back, styled when stdout is a terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/colonyops/taskbee/internal/core/chat"
)

// DefaultChatID is the chat scope used for the simulated console chat.
const DefaultChatID int64 = 1

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	replyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Transport is a single-chat console transport.
type Transport struct {
	chatID int64
	sender string
	in     io.Reader
	out    io.Writer
	styled bool
}

var _ chat.Transport = (*Transport)(nil)

// New creates a console transport that reads messages from in and writes
// replies to out, attributing every message to the given sender handle.
func New(sender string, in io.Reader, out io.Writer) *Transport {
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}

	return &Transport{
		chatID: DefaultChatID,
		sender: sender,
		in:     in,
		out:    out,
		styled: styled,
	}
}

// Updates delivers one update per non-blank input line. The channel closes
// on EOF or context cancellation.
func (t *Transport) Updates(ctx context.Context) (<-chan chat.Update, error) {
	ch := make(chan chat.Update)

	go func() {
		defer close(ch)

		scanner := bufio.NewScanner(t.in)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if ctx.Err() != nil {
				return
			}

			select {
			case ch <- chat.Update{ChatID: t.chatID, Sender: t.sender, Text: line}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// Send prints the reply to out. The chat ID is accepted for interface
// compatibility; the console has exactly one chat.
func (t *Transport) Send(ctx context.Context, chatID int64, text string) error {
	prompt := "bot>"
	if t.styled {
		prompt = promptStyle.Render(prompt)
		text = replyStyle.Render(text)
	}

	if _, err := fmt.Fprintf(t.out, "%s %s\n", prompt, text); err != nil {
		return fmt.Errorf("write reply: %w", err)
	}
	return nil
}
