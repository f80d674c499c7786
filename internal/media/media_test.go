package media

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	require.Equal(t, PlatformSpotify, ParsePlatform("spotify"))
	require.Equal(t, PlatformSpotify, ParsePlatform(" Spotify "))
	require.Equal(t, PlatformYouTube, ParsePlatform("youtube"))
	require.Equal(t, PlatformYouTube, ParsePlatform(""))
	require.Equal(t, PlatformYouTube, ParsePlatform("vinyl"))
}

func TestLibraryLookup(t *testing.T) {
	url, ok := LibraryLookup("Bohemian Rhapsody")
	require.True(t, ok)
	require.Contains(t, url, "youtube.com/watch")

	_, ok = LibraryLookup("some obscure b-side")
	require.False(t, ok)
}

func TestSearchURL(t *testing.T) {
	require.Equal(t,
		"https://www.youtube.com/results?search_query=shape+of+you",
		PlatformYouTube.SearchURL("shape of you"),
	)
	require.Equal(t,
		"https://open.spotify.com/search/shape%20of%20you",
		PlatformSpotify.SearchURL("shape of you"),
	)
}

func TestPlatformName(t *testing.T) {
	require.Equal(t, "Spotify", PlatformSpotify.Name())
	require.Equal(t, "YouTube", PlatformYouTube.Name())
}
