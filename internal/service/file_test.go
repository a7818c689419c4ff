package service

import (
	"bytes"
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doarbem/donation-api/internal/storage"
)

func newFileService(t *testing.T) *FileService {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	signer := storage.NewURLSigner("test-secret", "http://localhost:8080")

	return NewFileService(store, signer)
}

func signatureFromURL(t *testing.T, raw string) string {
	t.Helper()

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	return parsed.Query().Get("signature")
}

func TestUpload(t *testing.T) {
	svc := newFileService(t)

	uploaded, err := svc.Upload(context.Background(), "photo.png", "image/png", []byte("fake png"))

	require.NoError(t, err)
	assert.Regexp(t, `\.png$`, uploaded.Key, "original extension must survive")
	assert.Equal(t, "image/png", uploaded.ContentType)
	assert.Equal(t, int64(len("fake png")), uploaded.Size)
	assert.Contains(t, uploaded.URL, "signature=")
}

func TestUploadEmptyFile(t *testing.T) {
	svc := newFileService(t)

	_, err := svc.Upload(context.Background(), "empty.txt", "text/plain", nil)

	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestUploadTooLarge(t *testing.T) {
	svc := newFileService(t)

	_, err := svc.Upload(context.Background(), "big.bin", "application/octet-stream", bytes.Repeat([]byte("x"), int(maxUploadSize)+1))

	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestFetchUnknownKey(t *testing.T) {
	svc := newFileService(t)

	_, err := svc.Fetch(context.Background(), "nope.png")

	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestDownload(t *testing.T) {
	svc := newFileService(t)

	uploaded, err := svc.Upload(context.Background(), "doc.pdf", "application/pdf", []byte("pdf bytes"))
	require.NoError(t, err)

	signed, err := svc.Fetch(context.Background(), uploaded.Key)
	require.NoError(t, err)

	t.Run("valid signature", func(t *testing.T) {
		expires := signed.Expires.Unix()
		sig := signatureFromURL(t, signed.URL)

		obj, data, err := svc.Download(context.Background(), uploaded.Key, expires, sig)

		require.NoError(t, err)
		assert.Equal(t, []byte("pdf bytes"), data)
		assert.Equal(t, "application/pdf", obj.ContentType)
	})

	t.Run("tampered signature", func(t *testing.T) {
		_, _, err := svc.Download(context.Background(), uploaded.Key, signed.Expires.Unix(), "deadbeef")

		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("expired signature", func(t *testing.T) {
		svc.now = func() time.Time { return time.Now().Add(time.Hour) }
		defer func() { svc.now = time.Now }()

		_, _, err := svc.Download(context.Background(), uploaded.Key, signed.Expires.Unix(), signatureFromURL(t, signed.URL))

		assert.ErrorIs(t, err, ErrInvalidSignature)
	})
}

func TestDeleteThenFetch(t *testing.T) {
	svc := newFileService(t)

	uploaded, err := svc.Upload(context.Background(), "tmp.txt", "text/plain", []byte("bye"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), uploaded.Key))

	_, err = svc.Fetch(context.Background(), uploaded.Key)
	assert.ErrorIs(t, err, ErrFileNotFound)
}
