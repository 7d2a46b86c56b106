package jobs

import "strings"

// NormalizeHandle reduces the various ways users paste a channel reference
// (full URL, "@name/", bare name) down to the bare handle. "@example/" and
// "https://youtube.com/@example" both become "example".
func NormalizeHandle(raw string) string {
	h := strings.TrimSpace(raw)
	h = strings.TrimRight(h, "/")
	if i := strings.LastIndex(h, "/"); i >= 0 {
		h = h[i+1:]
	}
	return strings.TrimPrefix(h, "@")
}
