// Package intent normalizes utterances and classifies them into command intents.
package intent

// Intent is the classified purpose of a single utterance. Classification is
// total: every input maps to exactly one tag, with Fallback as the catch-all.
type Intent string

const (
	Greeting      Intent = "greeting"
	Time          Intent = "time"
	Date          Intent = "date"
	Weather       Intent = "weather"
	Search        Intent = "search"
	Wiki          Intent = "wiki"
	OpenSite      Intent = "open_site"
	Calculate     Intent = "calculate"
	MediaControl  Intent = "media_control"
	SystemCommand Intent = "system_command"
	SessionInfo   Intent = "session_info"
	Exit          Intent = "exit"
	AIQuestion    Intent = "ai_question"
	Unclear       Intent = "unclear"
	Fallback      Intent = "fallback"
)
