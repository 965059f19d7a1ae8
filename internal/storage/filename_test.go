package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	t.Run("keeps extension and strips bad characters", func(t *testing.T) {
		name := SanitizeFileName("my photo (1).PNG")
		assert.True(t, strings.HasSuffix(name, ".png"), "got %q", name)
		assert.NotContains(t, name, " ")
		assert.NotContains(t, name, "(")
		assert.True(t, strings.HasPrefix(name, "my_photo_"), "got %q", name)
	})

	t.Run("strips control and zero-width characters", func(t *testing.T) {
		name := SanitizeFileName("evil​name\x00\x1f.jpg")
		assert.NotContains(t, name, "​")
		assert.NotContains(t, name, "\x00")
		assert.True(t, strings.HasPrefix(name, "evilname_"), "got %q", name)
	})

	t.Run("collapses runs into single underscores", func(t *testing.T) {
		name := SanitizeFileName("a   b,,c.gif")
		assert.True(t, strings.HasPrefix(name, "a_b_c_"), "got %q", name)
	})

	t.Run("empty base falls back to file", func(t *testing.T) {
		name := SanitizeFileName("....png")
		assert.True(t, strings.HasPrefix(name, "file_"), "got %q", name)
	})

	t.Run("caps long base names", func(t *testing.T) {
		long := strings.Repeat("x", 500) + ".mp4"
		name := SanitizeFileName(long)
		assert.LessOrEqual(t, len(name), maxBaseNameLen+50)
		assert.True(t, strings.HasSuffix(name, ".mp4"))
	})

	t.Run("identical names do not collide", func(t *testing.T) {
		a := SanitizeFileName("same.jpg")
		b := SanitizeFileName("same.jpg")
		assert.NotEqual(t, a, b)
	})

	t.Run("path components are dropped", func(t *testing.T) {
		name := SanitizeFileName("../../etc/passwd")
		assert.False(t, strings.Contains(name, "/"), "got %q", name)
		assert.False(t, strings.HasPrefix(name, "."), "got %q", name)
	})
}
