// Package handler fulfills classified intents and composes user-facing
// responses. Each handler degrades to a fixed apology when its collaborator
// fails; no raw error ever reaches the user.
package handler

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/tkessler/parley/internal/config"
	"github.com/tkessler/parley/internal/intent"
	"github.com/tkessler/parley/internal/session"
)

// WeatherService is the weather lookup collaborator.
type WeatherService interface {
	Lookup(ctx context.Context, city string) (string, error)
}

// WikiService is the encyclopedia summary collaborator.
type WikiService interface {
	Summary(ctx context.Context, topic string) (string, error)
}

// Browser opens URLs and web searches.
type Browser interface {
	OpenURL(ctx context.Context, url string) error
	SearchWeb(ctx context.Context, query string) error
}

// Answerer is the generative backend collaborator.
type Answerer interface {
	Answer(ctx context.Context, prompt string) (string, error)
}

// Response is one handler outcome. Done signals the dispatcher to stop the
// loop after emitting the text.
type Response struct {
	Text string
	Done bool
}

// Deps bundles the collaborators a handler set may use. Nil entries degrade
// to fixed unavailable responses.
type Deps struct {
	Weather WeatherService
	Wiki    WikiService
	Browser Browser
	AI      Answerer
	Now     func() time.Time
}

// Handlers binds intents to their fulfillment logic.
type Handlers struct {
	cfg    config.Config
	logger *slog.Logger
	state  *session.State
	deps   Deps
}

// New constructs a handler set. A nil Now falls back to time.Now.
func New(cfg config.Config, logger *slog.Logger, state *session.State, deps Deps) *Handlers {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Handlers{cfg: cfg, logger: logger, state: state, deps: deps}
}

// Handle routes one classified utterance to its intent handler.
func (h *Handlers) Handle(ctx context.Context, tag intent.Intent, text string) Response {
	switch tag {
	case intent.Greeting:
		return h.Greeting(text)
	case intent.Time:
		return h.Time()
	case intent.Date:
		return h.Date()
	case intent.Weather:
		return h.Weather(ctx, text)
	case intent.Search:
		return h.Search(ctx, text)
	case intent.Wiki:
		return h.Wiki(ctx, text)
	case intent.OpenSite:
		return h.OpenSite(ctx, text)
	case intent.Calculate:
		return h.Calculate(text)
	case intent.MediaControl:
		return h.Media(ctx, text)
	case intent.SystemCommand:
		return h.SystemCommand()
	case intent.SessionInfo:
		return h.SessionInfo()
	case intent.Exit:
		return h.Exit()
	case intent.AIQuestion:
		return h.AIQuestion(ctx, text)
	case intent.Unclear:
		return h.Unclear()
	default:
		return h.Fallback(text)
	}
}

// logError records a collaborator failure that was converted to an apology.
func (h *Handlers) logError(msg string, err error) {
	if h.logger == nil || err == nil {
		return
	}
	h.logger.Error(msg, "error", err.Error())
}

// display capitalizes each word of a normalized name for output.
func display(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
