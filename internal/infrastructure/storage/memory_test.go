package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryObjectStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("put then get", func(t *testing.T) {
		s := NewMemoryObjectStorage()

		err := s.Put(ctx, "customers/a.png", "image/png", strings.NewReader("data"), 4)
		require.NoError(t, err)

		data, ok := s.Get("customers/a.png")
		assert.True(t, ok)
		assert.Equal(t, []byte("data"), data)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("rejects an empty key", func(t *testing.T) {
		s := NewMemoryObjectStorage()
		assert.Error(t, s.Put(ctx, "", "image/png", strings.NewReader("data"), 4))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := NewMemoryObjectStorage()

		require.NoError(t, s.Put(ctx, "customers/a.png", "image/png", strings.NewReader("data"), 4))
		require.NoError(t, s.Delete(ctx, "customers/a.png"))
		require.NoError(t, s.Delete(ctx, "customers/a.png"))

		_, ok := s.Get("customers/a.png")
		assert.False(t, ok)
	})
}
