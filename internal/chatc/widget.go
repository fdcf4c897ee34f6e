package chatc

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DefaultFallbackMessage is rendered as the bot reply when a request fails
const DefaultFallbackMessage = "Desculpe, ocorreu um erro ao processar sua solicitação."

// Widget runs the submission lifecycle against a View and a Requester.
// A Widget handles one submission at a time; views keep the submit control
// disabled while loading so a second submission cannot start.
type Widget struct {
	view      View
	requester Requester
	logger    *zap.Logger
	fallback  string
}

// Option configures a Widget
type Option func(*Widget)

// WithLogger sets the diagnostic logger
func WithLogger(logger *zap.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithFallbackMessage overrides the apology text shown on failure
func WithFallbackMessage(text string) Option {
	return func(w *Widget) {
		if text != "" {
			w.fallback = text
		}
	}
}

// NewWidget creates a new Widget
func NewWidget(view View, requester Requester, opts ...Option) *Widget {
	w := &Widget{
		view:      view,
		requester: requester,
		logger:    zap.NewNop(),
		fallback:  DefaultFallbackMessage,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Submit handles one submission of input.
// Empty or whitespace-only input is ignored and Submit returns false.
// Otherwise Submit blocks until the reply (or the fallback) is rendered
// and the view is back to idle, then returns true.
func (w *Widget) Submit(ctx context.Context, input string) bool {
	message := Normalize(input)
	if message == "" {
		return false
	}

	w.view.AppendMessage(NewMessage(message, SenderUser))
	w.view.ClearInput()
	w.dispatch(ctx, message)
	return true
}

// dispatch sends the request and renders its outcome.
// Diagnostics are written once the view is idle again so they never
// interleave with a running loading indicator.
func (w *Widget) dispatch(ctx context.Context, message string) {
	w.logger.Debug("sending chat request", zap.Int("length", len(message)))

	resp, err := w.await(ctx, message)
	if err != nil {
		w.logger.Error("chat request failed", zap.Error(err))
		w.view.AppendMessage(NewMessage(w.fallback, SenderBot))
		return
	}

	// context is only surfaced to operators
	w.logger.Debug("context used", zap.Any("context", resp.Context))
	w.view.AppendMessage(NewMessage(resp.Answer, SenderBot))
}

// await runs the request inside the loading state.
// The loading state is released on every exit path.
func (w *Widget) await(ctx context.Context, message string) (*ChatResponse, error) {
	w.view.SetLoading(true)
	defer w.view.SetLoading(false)

	return w.request(ctx, message)
}

func (w *Widget) request(ctx context.Context, message string) (resp *ChatResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("%w: panic during request: %v", ErrCommunication, r)
		}
	}()

	resp, err = w.requester.SubmitRequest(ctx, ChatRequest{Message: message})
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: empty response", ErrCommunication)
	}
	return resp, nil
}
