package browser

import (
	"sort"
	"strings"
)

// sites is the fixed keyword→URL table behind the "open X" command.
var sites = map[string]string{
	"google":    "https://google.com",
	"youtube":   "https://youtube.com",
	"facebook":  "https://facebook.com",
	"linkedin":  "https://linkedin.com",
	"github":    "https://github.com",
	"reddit":    "https://reddit.com",
	"wikipedia": "https://wikipedia.org",
	"gmail":     "https://mail.google.com",
	"maps":      "https://maps.google.com",
	"twitter":   "https://x.com",
}

// SiteURL returns the URL for a known site keyword.
func SiteURL(name string) (string, bool) {
	url, ok := sites[strings.ToLower(strings.TrimSpace(name))]
	return url, ok
}

// MatchSite scans text for the first known site keyword.
func MatchSite(text string) (string, bool) {
	for _, token := range strings.Fields(text) {
		token = strings.Trim(token, ".,!?;:")
		if _, ok := sites[token]; ok {
			return token, true
		}
	}
	return "", false
}

// SiteNames lists supported site keywords in stable order.
func SiteNames() []string {
	names := make([]string, 0, len(sites))
	for name := range sites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
