// Package chatc provides the core of the chat client.
// It owns the submission lifecycle: input capture, user message rendering,
// loading state, request dispatch and reply rendering. Views and the backend
// are injected so the same Widget drives every frontend.
package chatc

import (
	"context"
	"errors"
)

// ErrCommunication is matched by every error a Requester returns when the
// backend could not be reached or answered with something unusable.
var ErrCommunication = errors.New("communication failure")

// ChatRequest is the body sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the body returned by the chat endpoint.
// Context is diagnostic only and is never rendered.
type ChatResponse struct {
	Answer  string `json:"answer"`
	Context any    `json:"context"`
}

// View defines what the Widget needs from a rendering surface.
//
// Example usage:
//
//	view := terminal.NewView(os.Stdout, os.Stderr, locale.Lookup("pt-BR"))
//	widget := chatc.NewWidget(view, client, chatc.WithLogger(logger))
//	widget.Submit(ctx, "oi")
type View interface {
	// AppendMessage adds an entry to the end of the log and scrolls to it.
	AppendMessage(msg Message)

	// SetLoading toggles the submit control and the loading entry.
	// SetLoading(false) must tolerate being called when nothing is loading.
	SetLoading(loading bool)

	// ClearInput empties the input field.
	ClearInput()
}

// Requester sends a single chat request to the backend.
type Requester interface {
	SubmitRequest(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
