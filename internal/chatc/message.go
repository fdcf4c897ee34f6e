package chatc

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a message. It only affects styling.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// LoadingID is the well-known ID of the loading entry.
const LoadingID = "loading-indicator"

// Message represents a single entry in the chat log
type Message struct {
	ID        string    // UUID for regular entries, LoadingID for the loading entry
	Text      string    // Displayed verbatim
	Sender    Sender    // "user" or "bot"
	Timestamp time.Time // Creation time
}

// NewMessage creates a new message with a fresh ID
func NewMessage(text string, sender Sender) Message {
	return Message{
		ID:        uuid.New().String(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
}

// NewLoadingMessage creates the placeholder entry shown while a request is in flight
func NewLoadingMessage(text string) Message {
	return Message{
		ID:        LoadingID,
		Text:      text,
		Sender:    SenderBot,
		Timestamp: time.Now(),
	}
}

// IsLoading reports whether m is the loading entry
func (m Message) IsLoading() bool {
	return m.ID == LoadingID
}

// StyleClass returns the sender-specific style name for the entry
func (m Message) StyleClass() string {
	return string(m.Sender) + "-message"
}
