package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/tkessler/parley/internal/browser"
	"github.com/tkessler/parley/internal/intent"
)

const msgBrowserUnavailable = "I couldn't reach the browser just now."

// Search opens a web search for the extracted query. Single-word queries get
// " information" appended, which noticeably improves result relevance.
func (h *Handlers) Search(ctx context.Context, text string) Response {
	query := intent.SearchQuery(text)
	if query == "" {
		return Response{Text: "What would you like me to search for?"}
	}
	if !strings.Contains(query, " ") {
		query += " information"
	}

	if h.deps.Browser == nil {
		return Response{Text: msgBrowserUnavailable}
	}
	if err := h.deps.Browser.SearchWeb(ctx, query); err != nil {
		h.logError("web search failed", err)
		return Response{Text: msgBrowserUnavailable}
	}
	return Response{Text: fmt.Sprintf("Searching the web for %s.", query)}
}

// OpenSite opens a known site by keyword, or lists the supported ones.
func (h *Handlers) OpenSite(ctx context.Context, text string) Response {
	name, ok := browser.MatchSite(text)
	if !ok {
		return Response{Text: "I can open: " + strings.Join(browser.SiteNames(), ", ") + "."}
	}

	url, _ := browser.SiteURL(name)
	if h.deps.Browser == nil {
		return Response{Text: msgBrowserUnavailable}
	}
	if err := h.deps.Browser.OpenURL(ctx, url); err != nil {
		h.logError("open site failed", err)
		return Response{Text: msgBrowserUnavailable}
	}
	return Response{Text: "Opening " + display(name) + "."}
}
