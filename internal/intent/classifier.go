package intent

// Classify maps normalized text to exactly one intent. Empty input and
// speech-layer sentinels short-circuit to Unclear before any rule runs; text
// the rule chain cannot place is offered to the AI router and otherwise falls
// through to Fallback.
func Classify(text string) Intent {
	if text == "" || IsSentinel(text) {
		return Unclear
	}

	for _, rule := range Rules() {
		if rule.Match(text) {
			return rule.Intent
		}
	}

	if RouteToAI(text) {
		return AIQuestion
	}
	return Fallback
}
