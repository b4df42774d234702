package reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterWindow(t *testing.T) {
	businessID := int64(10)
	userID := int64(7)

	t.Run("caps recent mode at five regardless of requested limit", func(t *testing.T) {
		f := Filter{Limit: 100, Offset: 40}

		assert.True(t, f.RecentOnly())

		limit, offset := f.Window()
		assert.Equal(t, 5, limit)
		assert.Equal(t, 0, offset)
	})

	t.Run("business filter keeps requested window", func(t *testing.T) {
		f := Filter{BusinessID: &businessID, Limit: 100, Offset: 40}

		assert.False(t, f.RecentOnly())

		limit, offset := f.Window()
		assert.Equal(t, 100, limit)
		assert.Equal(t, 40, offset)
	})

	t.Run("user filter keeps requested window", func(t *testing.T) {
		f := Filter{UserID: &userID, Limit: 20, Offset: 0}

		limit, offset := f.Window()
		assert.Equal(t, 20, limit)
		assert.Equal(t, 0, offset)
	})
}
