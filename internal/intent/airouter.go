package intent

import "strings"

// tokenThreshold is the whitespace-token count above which an utterance is
// assumed to be open-ended natural language and routed to the model.
const tokenThreshold = 6

var aiTriggerPhrases = []string{
	"explain",
	"tell me about",
	"what is",
	"what are",
	"how does",
	"how do",
	"why",
	"who is",
	"who was",
	"when did",
	"define",
	"describe",
	"compare",
	"summarize",
	"recommend",
	"suggest",
	"difference between",
}

var interrogatives = []string{"what", "how", "why", "who", "when", "where"}

// RouteToAI decides whether text that matched no deterministic rule should be
// escalated to the generative backend. The heuristic is deliberately loose:
// short commands stay local for latency, anything that reads like a question
// goes to the model. False positives and negatives are expected.
func RouteToAI(text string) bool {
	if strings.HasSuffix(text, "?") {
		return true
	}
	for _, phrase := range aiTriggerPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	for _, word := range interrogatives {
		if containsWord(text, word) {
			return true
		}
	}
	if len(strings.Fields(text)) > tokenThreshold {
		return true
	}
	if containsWord(text, "vs") || containsWord(text, "versus") {
		return true
	}
	return false
}
