// Package media resolves playback requests against a static song library with
// a platform-search fallback.
package media

import (
	"net/url"
	"strings"
)

// Platform identifies a playback target.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformSpotify Platform = "spotify"
)

// ParsePlatform maps a spoken platform keyword onto a Platform, defaulting to
// YouTube.
func ParsePlatform(keyword string) Platform {
	if strings.EqualFold(strings.TrimSpace(keyword), string(PlatformSpotify)) {
		return PlatformSpotify
	}
	return PlatformYouTube
}

// Name returns the user-facing platform name.
func (p Platform) Name() string {
	if p == PlatformSpotify {
		return "Spotify"
	}
	return "YouTube"
}

// LibraryLookup returns the direct URL for a known song.
func LibraryLookup(song string) (string, bool) {
	link, ok := library[strings.ToLower(strings.TrimSpace(song))]
	return link, ok
}

// SearchURL builds a platform search URL for songs absent from the library.
func (p Platform) SearchURL(song string) string {
	escaped := url.QueryEscape(song)
	if p == PlatformSpotify {
		return "https://open.spotify.com/search/" + url.PathEscape(song)
	}
	return "https://www.youtube.com/results?search_query=" + escaped
}
