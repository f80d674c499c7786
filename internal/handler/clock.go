package handler

import (
	"fmt"
	"time"
)

// timeGreeting picks the greeting phrase for the hour of day: 5–11 morning,
// 12–16 afternoon, 17–20 evening, otherwise night.
func timeGreeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour >= 5 && hour <= 11:
		return "Good morning!"
	case hour >= 12 && hour <= 16:
		return "Good afternoon!"
	case hour >= 17 && hour <= 20:
		return "Good evening!"
	default:
		return "You're up late!"
	}
}

// Time reports the current wall-clock time.
func (h *Handlers) Time() Response {
	now := h.deps.Now()
	return Response{Text: fmt.Sprintf("The current time is %s. %s", now.Format("3:04 PM"), timeGreeting(now))}
}

// Date reports today's date.
func (h *Handlers) Date() Response {
	now := h.deps.Now()
	return Response{Text: fmt.Sprintf("Today is %s. %s", now.Format("Monday, January 2, 2006"), timeGreeting(now))}
}
