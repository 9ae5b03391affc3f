package monitor

import (
	"encoding/base64"
	"strings"

	"github.com/muesli/termenv"
)

// monitorDetailURL links to a monitor's detail page. The id is
// base64url-encoded so ids with slashes survive as one path segment.
func monitorDetailURL(baseURL, id, linkParameters string) string {
	return strings.TrimRight(baseURL, "/") + "/monitor/" +
		base64.RawURLEncoding.EncodeToString([]byte(id)) + linkParameters
}

// hyperlink wraps text in an OSC-8 link when enabled.
func hyperlink(enabled bool, url, text string) string {
	if !enabled || url == "" {
		return text
	}
	return termenv.Hyperlink(url, text)
}
