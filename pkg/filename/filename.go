package filename

import (
	"net/url"
	"path"
	"strings"
	"time"
)

// Base derives the output filename stem from a course URL. It takes the last
// path segment with its extension stripped, falling back to a timestamp-based
// name when the URL has no usable segment.
func Base(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err == nil {
		base := path.Base(parsed.Path)
		if base != "." && base != "/" {
			name := strings.TrimSuffix(base, path.Ext(base))
			if name != "" {
				return name
			}
		}
	}
	return "tts_" + time.Now().Format("20060102_150405")
}
