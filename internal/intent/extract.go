package intent

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cityStopWords are stripped from weather utterances before the remainder is
// treated as a city name.
var cityStopWords = map[string]struct{}{
	"weather": {}, "in": {}, "for": {}, "of": {}, "today": {}, "current": {},
	"now": {}, "what": {}, "whats": {}, "what's": {}, "is": {}, "the": {},
	"like": {}, "tell": {}, "me": {}, "about": {}, "how": {},
}

// City extracts a city name from a weather utterance. Returns "" when nothing
// usable remains or the remainder is a locational placeholder ("here",
// "local"), in which case the caller substitutes the configured default city.
func City(text string) string {
	var kept []string
	for _, token := range strings.Fields(text) {
		token = strings.Trim(token, ".,!?;:")
		if _, skip := cityStopWords[token]; skip {
			continue
		}
		kept = append(kept, token)
	}

	city := strings.Join(kept, " ")
	if city == "here" || city == "local" {
		return ""
	}
	return titleCase(city)
}

var searchStopWords = map[string]struct{}{
	"search": {}, "look": {}, "up": {}, "find": {}, "for": {}, "the": {},
	"web": {}, "google": {}, "please": {}, "can": {}, "you": {}, "on": {},
}

// SearchQuery strips search trigger words and returns the remaining query.
func SearchQuery(text string) string {
	var kept []string
	for _, token := range strings.Fields(text) {
		if _, skip := searchStopWords[strings.Trim(token, ".,!?;:")]; skip {
			continue
		}
		kept = append(kept, strings.Trim(token, ".,!?;:"))
	}
	return strings.Join(kept, " ")
}

// WikiTopic extracts the lookup topic from a wikipedia utterance. The
// original phrasing is usually "search wikipedia for X" so text after the
// last " for " wins when present.
func WikiTopic(text string) string {
	if idx := strings.LastIndex(text, " for "); idx >= 0 {
		return strings.TrimSpace(text[idx+len(" for "):])
	}

	var kept []string
	for _, token := range strings.Fields(text) {
		switch strings.Trim(token, ".,!?;:") {
		case "wikipedia", "search", "on", "look", "up", "about", "tell", "me", "the":
			continue
		}
		kept = append(kept, strings.Trim(token, ".,!?;:"))
	}
	return strings.Join(kept, " ")
}

// Song splits a media utterance into song name and platform keyword. The
// utterance starts with "play"; a trailing "on spotify"/"on youtube" selects
// the platform and is removed from the song name.
func Song(text string) (song, platform string) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return "", ""
	}
	song = strings.Join(fields[1:], " ")

	for _, p := range []string{"spotify", "youtube"} {
		marker := "on " + p
		if strings.Contains(song, marker) {
			platform = p
			song = strings.TrimSpace(strings.Replace(song, marker, "", 1))
			break
		}
	}
	return song, platform
}

// titleCase capitalizes the first rune of each word for display.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
