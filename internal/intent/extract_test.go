package intent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCity(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"weather in london", "London"},
		{"what's the weather like in new york", "New York"},
		{"weather", ""},
		{"weather here", ""},
		{"current weather now", ""},
		{"tell me about the weather in tokyo today", "Tokyo"},
		{"weather in águeda", "Águeda"},
		{"weather in são paulo", "São Paulo"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, City(tc.text), "text: %q", tc.text)
	}
}

func TestSearchQuery(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"search for cheap flights", "cheap flights"},
		{"look up golang generics", "golang generics"},
		{"can you search the web for pasta recipes please", "pasta recipes"},
		{"search", ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, SearchQuery(tc.text), "text: %q", tc.text)
	}
}

func TestWikiTopic(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"search wikipedia for alan turing", "alan turing"},
		{"wikipedia alan turing", "alan turing"},
		{"look up quantum computing on wikipedia", "quantum computing"},
		{"search wikipedia for the battle for midway", "midway"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, WikiTopic(tc.text), "text: %q", tc.text)
	}
}

func TestSong(t *testing.T) {
	tests := []struct {
		text         string
		wantSong     string
		wantPlatform string
	}{
		{"play bohemian rhapsody", "bohemian rhapsody", ""},
		{"play shape of you on spotify", "shape of you", "spotify"},
		{"play hotel california on youtube", "hotel california", "youtube"},
		{"play", "", ""},
	}
	for _, tc := range tests {
		song, platform := Song(tc.text)
		require.Equal(t, tc.wantSong, song, "text: %q", tc.text)
		require.Equal(t, tc.wantPlatform, platform, "text: %q", tc.text)
	}
}

func TestRouteToAI(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"is pluto a planet?", true},
		{"tell me about black holes", true},
		{"why is the sky blue", true},
		{"compare rust and go", true},
		{"this sentence has more than six whitespace tokens in it", true},
		{"coffee vs tea", true},
		{"turn it off", false},
		{"banana", false},
		{"do the thing now", false},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, RouteToAI(tc.text), "text: %q", tc.text)
	}
}
