package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()

	err = store.Put(ctx, "products/p1.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	reader, err := store.Get(ctx, "products/p1.png")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestFileStore_Overwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.png", strings.NewReader("first")))
	require.NoError(t, store.Put(ctx, "a.png", strings.NewReader("second")))

	reader, err := store.Get(ctx, "a.png")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestFileStore_GetMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFileStore_Delete(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.png", strings.NewReader("data")))
	require.NoError(t, store.Delete(ctx, "a.png"))

	_, err = store.Get(ctx, "a.png")
	assert.Error(t, err)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(ctx, "a.png"))
}

func TestFileStore_RejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()

	err = store.Put(ctx, "../escape.png", strings.NewReader("data"))
	assert.Error(t, err)

	_, err = store.Get(ctx, "/etc/passwd")
	assert.Error(t, err)
}
