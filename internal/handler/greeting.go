package handler

import "strings"

// Greeting answers hellos and identity questions. The first greeting of a
// session carries an onboarding sentence.
func (h *Handlers) Greeting(text string) Response {
	if strings.Contains(text, "who are you") || strings.Contains(text, "what are you") {
		return Response{Text: "I'm Parley, a voice assistant. I can tell you the time, check the weather, search the web, play music, do arithmetic, and answer questions."}
	}

	greeting := timeGreeting(h.deps.Now())
	if h.state != nil && h.state.FirstGreeting() {
		return Response{Text: greeting + " I'm Parley. How can I help you today?"}
	}
	return Response{Text: greeting + " What can I do for you?"}
}
