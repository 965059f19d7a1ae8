package storage

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

const maxBaseNameLen = 80

var disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFileName turns a client-supplied filename into a safe, unique
// object name: control and zero-width characters are stripped, runs of
// disallowed characters collapse to single underscores, the base name is
// capped, and a timestamp plus random token is appended so concurrent
// uploads of the same original name never collide.
func SanitizeFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))

	base = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '\u200b' || r == '\u200c' || r == '\u200d' || r == '\ufeff' {
			return -1
		}
		return r
	}, base)
	base = disallowedChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._-")
	if base == "" {
		base = "file"
	}
	if len(base) > maxBaseNameLen {
		base = base[:maxBaseNameLen]
	}
	if len(ext) > 10 {
		ext = ext[:10]
	}

	token := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("%s_%d_%s%s", base, time.Now().UnixMilli(), token, ext)
}
