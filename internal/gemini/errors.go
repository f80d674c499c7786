package gemini

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/tkessler/parley/internal/collab"
)

// classify maps transport and API failures onto the collaborator error
// taxonomy so handlers can pick an apology without inspecting raw errors.
func classify(op string, err error) error {
	kind := collab.KindUnknown

	var apiErr genai.APIError
	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = collab.KindTimeout
	case errors.As(err, &apiErr):
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = collab.KindUnauthorized
		case http.StatusTooManyRequests:
			kind = collab.KindRateLimited
		case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
			kind = collab.KindUnreachable
		default:
			if strings.Contains(strings.ToLower(apiErr.Message), "safety") {
				kind = collab.KindContentFiltered
			}
		}
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			kind = collab.KindTimeout
		} else {
			kind = collab.KindUnreachable
		}
	}

	return &collab.Error{Kind: kind, Op: op, Err: err}
}

func filteredError(op string) error {
	return &collab.Error{
		Kind: collab.KindContentFiltered,
		Op:   op,
		Err:  errors.New("response blocked by safety filter"),
	}
}

func emptyError(op string) error {
	return &collab.Error{
		Kind: collab.KindUnknown,
		Op:   op,
		Err:  errors.New("model returned no text"),
	}
}
