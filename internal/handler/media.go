package handler

import (
	"context"
	"fmt"

	"github.com/tkessler/parley/internal/intent"
	"github.com/tkessler/parley/internal/media"
)

// Media plays a song: the static library is consulted first, then the target
// platform's search page.
func (h *Handlers) Media(ctx context.Context, text string) Response {
	song, platformKeyword := intent.Song(text)
	if song == "" {
		return Response{Text: "What would you like me to play?"}
	}
	platform := media.ParsePlatform(platformKeyword)

	if h.deps.Browser == nil {
		return Response{Text: msgBrowserUnavailable}
	}

	if url, ok := media.LibraryLookup(song); ok {
		if err := h.deps.Browser.OpenURL(ctx, url); err != nil {
			h.logError("media open failed", err)
			return Response{Text: msgBrowserUnavailable}
		}
		return Response{Text: "Playing " + display(song) + "."}
	}

	if err := h.deps.Browser.OpenURL(ctx, platform.SearchURL(song)); err != nil {
		h.logError("media platform search failed", err)
		return Response{Text: msgBrowserUnavailable}
	}
	return Response{Text: fmt.Sprintf("I don't have %s in my library; searching on %s.", display(song), platform.Name())}
}
