package cmd

import (
	"github.com/longkey1/chatc/internal/backend"
	"github.com/longkey1/chatc/internal/chatc"
	"github.com/longkey1/chatc/internal/chatc/config"
	"github.com/longkey1/chatc/internal/chatc/locale"
)

// newBackend creates the backend client from the configuration
func newBackend(cfg *config.Config) *backend.Client {
	return backend.NewClient(cfg)
}

// newTexts selects the UI strings from the configuration
func newTexts(cfg *config.Config) locale.Strings {
	return locale.Lookup(cfg.Language).WithOverrides(cfg.FallbackMessage, cfg.LoadingText)
}

// widgetOptions returns the options every frontend passes to chatc.NewWidget
func widgetOptions(texts locale.Strings) []chatc.Option {
	return []chatc.Option{
		chatc.WithLogger(logger),
		chatc.WithFallbackMessage(texts.Fallback),
	}
}
