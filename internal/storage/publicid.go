package storage

import (
	"regexp"
	"strings"
)

var versionPrefix = regexp.MustCompile(`^v\d+/`)

// PublicIDFromURL recovers a blob store public id from a delivery URL. A
// delivery URL embeds an "upload" path segment, an optional "v<digits>"
// version segment, then the object path with a file extension:
//
//	https://host/demo/image/upload/v1712/products/shoe.png -> products/shoe
//
// The boolean is false when the URL carries no upload segment. Extraction is
// best effort and never fails: callers treat a miss as nothing to clean up.
func PublicIDFromURL(rawURL string) (string, bool) {
	parts := strings.Split(rawURL, "/")
	idx := -1
	for i, part := range parts {
		if part == "upload" {
			idx = i
			break
		}
	}
	if idx < 0 || idx == len(parts)-1 {
		return "", false
	}

	rest := strings.Join(parts[idx+1:], "/")
	rest = versionPrefix.ReplaceAllString(rest, "")
	if dot := strings.LastIndex(rest, "."); dot > 0 {
		rest = rest[:dot]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

// LocalPublicID recovers a public id from a stored reference produced by
// LocalStorage ("/uploads/<name>.<ext>"). Cleanup callers try this when
// PublicIDFromURL misses, so locally stored media is reclaimed too.
func LocalPublicID(rawURL string) (string, bool) {
	rest, ok := strings.CutPrefix(rawURL, LocalURLPrefix+"/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	if dot := strings.LastIndex(rest, "."); dot > 0 {
		rest = rest[:dot]
	}
	return rest, true
}
