// Package chat defines the transport boundary between the bot core and a
// chat platform.
//
// The core never talks to a messaging backend directly. A Transport delivers
// inbound updates as (chat, sender, text) tuples and accepts outbound replies;
// everything platform-specific (authentication, long polling, webhooks) lives
// behind this interface.
package chat

import "context"

// Update is a single inbound message from a chat.
type Update struct {
	ChatID int64  // scope all task visibility is partitioned by
	Sender string // bare handle of the author, no leading "@"
	Text   string // raw message text, including the /command prefix
}

// Transport connects the bot to a chat platform.
type Transport interface {
	// Updates returns a channel of inbound updates. The channel is closed
	// when ctx is cancelled or the underlying connection ends.
	Updates(ctx context.Context) (<-chan Update, error)

	// Send delivers reply text to a chat.
	Send(ctx context.Context, chatID int64, text string) error
}
