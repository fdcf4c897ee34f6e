// Package locale holds the user-facing strings of the chat client.
package locale

import (
	"github.com/longkey1/chatc/internal/chatc"
	"golang.org/x/text/language"
)

// Strings is the set of texts a view displays
type Strings struct {
	Tag       language.Tag
	Fallback  string // Bot reply when a request fails
	Loading   string // Loading entry text
	UserLabel string
	BotLabel  string
	Prompt    string // Input placeholder
}

var catalog = map[language.Tag]Strings{
	language.BrazilianPortuguese: {
		Tag:       language.BrazilianPortuguese,
		Fallback:  chatc.DefaultFallbackMessage,
		Loading:   "Digitando...",
		UserLabel: "Você",
		BotLabel:  "Assistente",
		Prompt:    "Digite sua mensagem...",
	},
	language.English: {
		Tag:       language.English,
		Fallback:  "Sorry, an error occurred while processing your request.",
		Loading:   "Typing...",
		UserLabel: "You",
		BotLabel:  "Assistant",
		Prompt:    "Type your message...",
	},
}

// The first tag is the default.
var matcher = language.NewMatcher([]language.Tag{
	language.BrazilianPortuguese,
	language.English,
})

// Lookup returns the strings for the closest supported language.
// Unknown or malformed tags fall back to Brazilian Portuguese.
func Lookup(lang string) Strings {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	for supported, texts := range catalog {
		if b, _ := supported.Base(); b == base {
			return texts
		}
	}
	return catalog[language.BrazilianPortuguese]
}

// Label returns the display label for sender
func (s Strings) Label(sender chatc.Sender) string {
	if sender == chatc.SenderUser {
		return s.UserLabel
	}
	return s.BotLabel
}

// WithOverrides replaces the fallback and loading texts when set
func (s Strings) WithOverrides(fallback, loading string) Strings {
	if fallback != "" {
		s.Fallback = fallback
	}
	if loading != "" {
		s.Loading = loading
	}
	return s
}
