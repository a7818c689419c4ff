package storage

import (
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedURLRoundTrip(t *testing.T) {
	signer := NewURLSigner("secret", "http://localhost:8080")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	signed, expires := signer.SignedURL("uploads/photo.png", 15*time.Minute, now)

	assert.Equal(t, now.Add(15*time.Minute), expires)

	parsed, err := url.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/download", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "uploads/photo.png", q.Get("key"))

	expiresUnix, err := strconv.ParseInt(q.Get("expires"), 10, 64)
	require.NoError(t, err)
	assert.Equal(t, expires.Unix(), expiresUnix)

	assert.True(t, signer.Verify(q.Get("key"), expiresUnix, q.Get("signature"), now))
}

func TestVerify(t *testing.T) {
	signer := NewURLSigner("secret", "http://localhost:8080")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	signed, expires := signer.SignedURL("doc.pdf", time.Minute, now)
	parsed, err := url.Parse(signed)
	require.NoError(t, err)
	sig := parsed.Query().Get("signature")

	t.Run("past expiry", func(t *testing.T) {
		assert.False(t, signer.Verify("doc.pdf", expires.Unix(), sig, expires.Add(time.Second)))
	})

	t.Run("another key", func(t *testing.T) {
		assert.False(t, signer.Verify("other.pdf", expires.Unix(), sig, now))
	})

	t.Run("stretched expiry", func(t *testing.T) {
		assert.False(t, signer.Verify("doc.pdf", expires.Unix()+3600, sig, now))
	})

	t.Run("tampered signature", func(t *testing.T) {
		assert.False(t, signer.Verify("doc.pdf", expires.Unix(), "deadbeef", now))
	})

	t.Run("another secret", func(t *testing.T) {
		other := NewURLSigner("other-secret", "http://localhost:8080")
		assert.False(t, other.Verify("doc.pdf", expires.Unix(), sig, now))
	})
}
