package handler

import (
	"fmt"
	"math"
)

// SystemCommand refuses machine control. No actual system call is permitted.
func (h *Handlers) SystemCommand() Response {
	return Response{Text: "System commands like shutdown and restart are disabled for safety."}
}

// SessionInfo reports session statistics from state.
func (h *Handlers) SessionInfo() Response {
	stats := h.state.Stats()
	minutes := int(math.Floor(stats.Uptime.Minutes()))

	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	return Response{Text: fmt.Sprintf(
		"We've been talking for %d minutes and I've handled %d commands. AI answers are %s, speech output is %s.",
		minutes, stats.Commands, onOff(stats.Flags.AIEnabled), onOff(stats.Flags.SpeechEnabled),
	)}
}

// Exit composes the goodbye message and signals the dispatcher to stop.
func (h *Handlers) Exit() Response {
	stats := h.state.Stats()
	minutes := int(math.Floor(stats.Uptime.Minutes()))

	text := fmt.Sprintf("Goodbye! We talked for %d minutes. See you next time.", minutes)
	if stats.Commands > 5 {
		text = fmt.Sprintf("Goodbye! We talked for %d minutes and got through %d commands. That was a productive session!", minutes, stats.Commands)
	}
	return Response{Text: text, Done: true}
}

// Fallback echoes unrecognized input with a capability hint.
func (h *Handlers) Fallback(text string) Response {
	return Response{Text: fmt.Sprintf(
		"I'm not sure how to help with %q. I can tell you the time or date, check the weather, search the web, open sites, play music, do arithmetic, or answer questions.",
		text,
	)}
}

// Unclear asks for a repeat after empty or unintelligible input.
func (h *Handlers) Unclear() Response {
	return Response{Text: "I didn't catch that. Could you say it again?"}
}
