// Package browser opens URLs and web searches through a configured command.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"time"
)

const searchBase = "https://www.google.com/search?q="

// SearchURL builds a web search URL for a query.
func SearchURL(query string) string {
	return searchBase + url.QueryEscape(query)
}

// Opener launches URLs through an external command (xdg-open by default).
type Opener struct {
	argv   []string
	logger *slog.Logger
}

// NewOpener constructs an opener from a command argv.
func NewOpener(argv []string, logger *slog.Logger) *Opener {
	return &Opener{argv: argv, logger: logger}
}

// OpenURL launches target in the user's browser. The launcher command is
// expected to detach; a short timeout guards against ones that do not.
func (o *Opener) OpenURL(ctx context.Context, target string) error {
	if len(o.argv) == 0 {
		return fmt.Errorf("browser command is not configured")
	}

	runCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	argv := append(append([]string{}, o.argv...), target)
	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open %s with %s: %w", target, argv[0], err)
	}

	if o.logger != nil {
		o.logger.Info("opened url", "url", target)
	}
	return nil
}

// SearchWeb opens the browser on a search results page for query.
func (o *Opener) SearchWeb(ctx context.Context, query string) error {
	return o.OpenURL(ctx, SearchURL(query))
}
