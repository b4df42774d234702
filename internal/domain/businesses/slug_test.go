package businesses

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "Corner Bakery", "corner-bakery"},
		{"punctuation collapses", "Joe's Pizza & Pasta!", "joe-s-pizza-pasta"},
		{"leading and trailing junk", "  --Cafe--  ", "cafe"},
		{"already a slug", "corner-bakery", "corner-bakery"},
		{"unicode drops out", "Café Münch", "caf-m-nch"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugifyCapsLength(t *testing.T) {
	long := strings.Repeat("abc ", 40)
	slug := Slugify(long)

	assert.LessOrEqual(t, len(slug), 64)
	assert.False(t, strings.HasSuffix(slug, "-"))
}
