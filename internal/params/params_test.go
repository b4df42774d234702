package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := ParseList(url.Values{}, 100, "created_at", "rating")

		assert.Equal(t, 50, p.Limit)
		assert.Equal(t, 0, p.Offset)
		assert.Equal(t, "created_at", p.SortBy)
		assert.Equal(t, "desc", p.SortOrder)
	})

	t.Run("honors valid values", func(t *testing.T) {
		q := url.Values{
			"limit":      {"25"},
			"offset":     {"10"},
			"sort_by":    {"rating"},
			"sort_order": {"asc"},
		}
		p := ParseList(q, 100, "created_at", "rating")

		assert.Equal(t, 25, p.Limit)
		assert.Equal(t, 10, p.Offset)
		assert.Equal(t, "rating", p.SortBy)
		assert.Equal(t, "asc", p.SortOrder)
	})

	t.Run("caps limit", func(t *testing.T) {
		q := url.Values{"limit": {"5000"}}
		p := ParseList(q, 100, "created_at")

		assert.Equal(t, 100, p.Limit)
	})

	t.Run("ignores junk", func(t *testing.T) {
		q := url.Values{
			"limit":      {"-3"},
			"offset":     {"abc"},
			"sort_by":    {"password"},
			"sort_order": {"DROP TABLE"},
		}
		p := ParseList(q, 100, "created_at", "rating")

		assert.Equal(t, 50, p.Limit)
		assert.Equal(t, 0, p.Offset)
		assert.Equal(t, "created_at", p.SortBy)
		assert.Equal(t, "desc", p.SortOrder)
	})
}
