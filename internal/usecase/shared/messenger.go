package shared

import (
	"context"

	"massfit-bot/internal/domain/order"
)

type Button struct {
	Text string
	Data string
}

// Keyboard is an inline keyboard, one slice per row.
type Keyboard [][]Button

type MenuButton struct {
	Text           string
	RequestContact bool
}

type MessageRef struct {
	ChatID    int64
	MessageID int64
}

func (r MessageRef) IsZero() bool {
	return r.ChatID == 0 || r.MessageID == 0
}

type OutboundMessage struct {
	ChatID   int64
	Text     string
	Keyboard Keyboard
	// Menu replaces the persistent reply keyboard when set.
	Menu    [][]MenuButton
	ReplyTo int64
}

type Messenger interface {
	Send(ctx context.Context, msg OutboundMessage) (MessageRef, error)
	Edit(ctx context.Context, ref MessageRef, text string, kb Keyboard) error
	SendPhoto(ctx context.Context, chatID int64, photoRef, caption string, kb Keyboard) (MessageRef, error)
	SendLocation(ctx context.Context, chatID int64, loc order.Location, replyTo int64) (MessageRef, error)
	AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error
}
