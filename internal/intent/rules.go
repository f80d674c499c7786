package intent

import (
	"strings"

	"github.com/tkessler/parley/internal/browser"
)

// Rule is one predicate→intent entry in the classifier chain.
type Rule struct {
	Name   string
	Intent Intent
	Match  func(text string) bool
}

// Rules returns the classifier rule chain in evaluation order. Order is a
// functional requirement: the first matching rule wins, so e.g. "stop the
// music" resolves to Exit because the exit rule runs before media control.
func Rules() []Rule {
	return []Rule{
		{Name: "exit", Intent: Exit, Match: containsAny("stop", "quit", "exit", "bye", "goodbye", "shut down")},
		{Name: "session", Intent: SessionInfo, Match: containsAny("session", "statistics", "stats", "how long")},
		{Name: "greeting", Intent: Greeting, Match: containsAny("hello", "hi", "hey", "good morning", "good afternoon", "good evening", "who are you", "what are you")},
		{Name: "time", Intent: Time, Match: containsAny("time", "clock")},
		{Name: "date", Intent: Date, Match: containsAny("date", "today", "what day")},
		{Name: "weather", Intent: Weather, Match: containsAny("weather")},
		{Name: "wiki", Intent: Wiki, Match: func(text string) bool {
			if !containsWord(text, "wikipedia") {
				return false
			}
			// "open wikipedia" belongs to the open_site rule below
			if containsWord(text, "open") {
				return false
			}
			return true
		}},
		{Name: "search", Intent: Search, Match: containsAny("search", "look up", "find")},
		{Name: "open_site", Intent: OpenSite, Match: func(text string) bool {
			if !strings.Contains(text, "open") {
				return false
			}
			_, ok := browser.MatchSite(text)
			return ok
		}},
		{Name: "calculate", Intent: Calculate, Match: containsAny("calculate", "math", "plus", "minus", "times", "multiply", "multiplied", "divide", "divided")},
		{Name: "media", Intent: MediaControl, Match: func(text string) bool {
			if !strings.HasPrefix(text, "play") {
				return false
			}
			return containsAny("play", "pause", "stop", "volume", "skip")(text)
		}},
		{Name: "system", Intent: SystemCommand, Match: containsAny("shutdown", "restart", "sleep", "lock")},
	}
}

// containsAny builds a predicate matching any listed trigger. Multi-word
// phrases match as substrings; single words only match on token boundaries so
// "this" does not trigger the "hi" greeting rule.
func containsAny(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, kw := range keywords {
			if strings.Contains(kw, " ") {
				if strings.Contains(text, kw) {
					return true
				}
				continue
			}
			if containsWord(text, kw) {
				return true
			}
		}
		return false
	}
}

func containsWord(text, word string) bool {
	for _, token := range strings.Fields(text) {
		if strings.Trim(token, ".,!?;:'\"") == word {
			return true
		}
	}
	return false
}
