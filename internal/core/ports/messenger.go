package ports

import "context"

// Button is a single inline keyboard button. Exactly one of CallbackData and
// URL should be set.
type Button struct {
	Text         string
	CallbackData string
	URL          string
}

// Keyboard is an inline keyboard: rows of buttons. A nil keyboard means the
// message carries no buttons; editing a message with a nil keyboard strips
// the buttons it had.
type Keyboard [][]Button

// Row builds a single-row keyboard fragment.
func Row(buttons ...Button) []Button {
	return buttons
}

// Messenger is the outbound chat transport. Implementations talk to the
// messenger platform; the core only knows chat ids and message ids.
//
// Send returns the platform-assigned message id so callers can edit or
// delete the message later. All methods are synchronous; callers decide
// whether a failure is fatal (it almost never is for notifications).
type Messenger interface {
	// SendMessage posts text (with an optional inline keyboard) to a chat
	// and returns the new message's id.
	SendMessage(ctx context.Context, chatID int64, text string, keyboard Keyboard) (int64, error)

	// EditMessage replaces the text and keyboard of an existing message.
	EditMessage(ctx context.Context, chatID, messageID int64, text string, keyboard Keyboard) error

	// DeleteMessage removes a message. Platforms refuse deletion of old
	// messages; callers fall back to EditMessage when that happens.
	DeleteMessage(ctx context.Context, chatID, messageID int64) error
}
