// Package dispatch sequences one conversation turn: normalize → classify →
// handle → update session state.
package dispatch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tkessler/parley/internal/handler"
	"github.com/tkessler/parley/internal/intent"
	"github.com/tkessler/parley/internal/session"
	"github.com/tkessler/parley/internal/speech"
)

// msgInternalError is the only thing a user sees when a handler faults.
const msgInternalError = "I ran into an error there. Let's try something else."

// Result is the outcome of dispatching one utterance.
type Result struct {
	Intent   intent.Intent
	Response string
	Done     bool
	Counted  bool
}

// Dispatcher owns turn processing. Turns are strictly sequential; the
// dispatcher assumes exclusive access to session state for the duration of
// one Dispatch call.
type Dispatcher struct {
	logger   *slog.Logger
	handlers *handler.Handlers
	state    *session.State
}

// New constructs a dispatcher.
func New(logger *slog.Logger, handlers *handler.Handlers, state *session.State) *Dispatcher {
	return &Dispatcher{logger: logger, handlers: handlers, state: state}
}

// Dispatch processes one raw utterance end to end. Handler panics are
// converted into a generic response so the conversation loop never dies
// mid-session; the only legitimate way to stop the loop is the Exit intent.
func (d *Dispatcher) Dispatch(ctx context.Context, raw string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			if d.logger != nil {
				d.logger.Error("handler panic", "panic", r)
			}
			result.Response = msgInternalError
			result.Done = false
		}
	}()

	text := intent.Normalize(raw)
	tag := intent.Classify(text)

	// A turn counts once it reaches a handler. "No input at all" (empty or
	// a listen timeout) never reaches one; garbled input does, via Unclear.
	counted := text != "" && text != intent.SentinelTimeout
	if counted {
		d.state.RecordCommand()
	}

	resp := d.handlers.Handle(ctx, tag, text)
	if resp.Done {
		d.state.Terminate()
	}

	if d.logger != nil {
		d.logger.Info("dispatched",
			"intent", tag,
			"counted", counted,
			"done", resp.Done,
			"utterance_length", len(text),
		)
	}

	return Result{Intent: tag, Response: resp.Text, Done: resp.Done, Counted: counted}
}

// Loop pulls utterances from the transcriber until the Exit intent, input
// exhaustion, or context cancellation. Each result is passed to emit.
func (d *Dispatcher) Loop(ctx context.Context, transcriber speech.Transcriber, emit func(Result)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		utterance, err := transcriber.Listen(ctx)
		if err != nil {
			switch {
			case errors.Is(err, speech.ErrClosed):
				return nil
			case errors.Is(err, speech.ErrTimeout):
				utterance = intent.SentinelTimeout
			case errors.Is(err, speech.ErrUnrecognized):
				utterance = intent.SentinelUnknown
			default:
				utterance = intent.SentinelError
			}
		}

		result := d.Dispatch(ctx, utterance)
		emit(result)
		if result.Done {
			return nil
		}
	}
}
