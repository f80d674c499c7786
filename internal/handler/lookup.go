package handler

import (
	"context"
	"errors"

	"github.com/tkessler/parley/internal/intent"
	"github.com/tkessler/parley/internal/wiki"
)

const (
	msgWeatherUnavailable = "The weather service is unavailable right now."
	msgWikiUnavailable    = "The encyclopedia service is unavailable right now."
	msgWikiNotFound       = "Sorry, I couldn't find any information on that topic."
)

// Weather reports conditions for the city in the utterance, defaulting to the
// configured city when none is named.
func (h *Handlers) Weather(ctx context.Context, text string) Response {
	city := intent.City(text)
	if city == "" {
		city = h.cfg.DefaultCity
	}

	if h.deps.Weather == nil {
		return Response{Text: msgWeatherUnavailable}
	}
	report, err := h.deps.Weather.Lookup(ctx, city)
	if err != nil {
		h.logError("weather lookup failed", err)
		return Response{Text: msgWeatherUnavailable}
	}
	return Response{Text: report}
}

// Wiki answers knowledge lookups with a trimmed encyclopedia summary.
func (h *Handlers) Wiki(ctx context.Context, text string) Response {
	topic := intent.WikiTopic(text)
	if topic == "" {
		return Response{Text: "What topic should I look up?"}
	}

	if h.deps.Wiki == nil {
		return Response{Text: msgWikiUnavailable}
	}
	summary, err := h.deps.Wiki.Summary(ctx, topic)
	if err != nil {
		if errors.Is(err, wiki.ErrNotFound) {
			return Response{Text: msgWikiNotFound}
		}
		h.logError("wiki summary failed", err)
		return Response{Text: msgWikiUnavailable}
	}
	return Response{Text: "Here's what I found on Wikipedia: " + summary}
}
