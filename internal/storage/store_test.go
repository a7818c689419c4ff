package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStoreRequiresBasePath(t *testing.T) {
	_, err := NewFileStore("  ")

	assert.Error(t, err)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	obj, err := store.Write(ctx, "uploads/photo.png", "image/png", []byte("png bytes"))
	require.NoError(t, err)
	assert.Equal(t, "uploads/photo.png", obj.Key)
	assert.Equal(t, int64(9), obj.Size)

	read, data, err := store.Read(ctx, "uploads/photo.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), data)
	assert.Equal(t, "image/png", read.ContentType, "content type must survive the sidecar round trip")

	stat, err := store.Stat(ctx, "uploads/photo.png")
	require.NoError(t, err)
	assert.Equal(t, int64(9), stat.Size)

	require.NoError(t, store.Delete(ctx, "uploads/photo.png"))

	_, _, err = store.Read(ctx, "uploads/photo.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestFileStoreMissingObject(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = store.Stat(ctx, "ghost.txt")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	err = store.Delete(ctx, "ghost.txt")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestFileStoreReadWithoutMeta(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	// An empty content type falls back to the default on read.
	_, err = store.Write(ctx, "plain.bin", "", []byte("x"))
	require.NoError(t, err)

	obj, _, err := store.Read(ctx, "plain.bin")
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", obj.ContentType)
}

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{name: "plain key", key: "photo.png", want: "photo.png"},
		{name: "nested key", key: "uploads/photo.png", want: "uploads/photo.png"},
		{name: "leading slash stripped", key: "/photo.png", want: "photo.png"},
		{name: "redundant segments cleaned", key: "a/./b.png", want: "a/b.png"},
		{name: "empty key", key: "", wantErr: true},
		{name: "whitespace key", key: "   ", wantErr: true},
		{name: "dot key", key: ".", wantErr: true},
		{name: "parent traversal", key: "..", wantErr: true},
		{name: "traversal inside path", key: "../etc/passwd", wantErr: true},
		{name: "deep traversal", key: "a/../../etc/passwd", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sanitizeKey(tc.key)

			if tc.wantErr {
				assert.ErrorIs(t, err, errInvalidKey)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
