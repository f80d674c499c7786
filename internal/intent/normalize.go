package intent

import "strings"

// Normalize lower-cases and trims a raw utterance. Whitespace-only input
// normalizes to the empty string. Idempotent.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Sentinel transcripts emitted by the speech layer in place of real input.
const (
	SentinelTimeout = "timeout"
	SentinelUnknown = "unknown"
	SentinelError   = "error"
)

// IsSentinel reports whether normalized text is a speech-layer signal rather
// than an utterance.
func IsSentinel(text string) bool {
	switch text {
	case SentinelTimeout, SentinelUnknown, SentinelError:
		return true
	}
	return false
}
