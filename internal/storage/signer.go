package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// URLSigner issues and verifies time-limited download URLs. Signatures are
// HMAC-SHA256 over "key\nexpiry" so a URL cannot be replayed for another
// object or past its expiry.
type URLSigner struct {
	secret  []byte
	baseURL string
}

func NewURLSigner(secret, baseURL string) *URLSigner {
	return &URLSigner{
		secret:  []byte(secret),
		baseURL: baseURL,
	}
}

// SignedURL returns the download URL for key and its expiry time.
func (s *URLSigner) SignedURL(key string, ttl time.Duration, now time.Time) (string, time.Time) {
	expires := now.Add(ttl)
	sig := s.signature(key, expires.Unix())

	q := url.Values{}
	q.Set("key", key)
	q.Set("expires", strconv.FormatInt(expires.Unix(), 10))
	q.Set("signature", sig)

	return fmt.Sprintf("%s/api/v1/files/download?%s", s.baseURL, q.Encode()), expires
}

// Verify checks the signature and expiry of a download request.
func (s *URLSigner) Verify(key string, expires int64, signature string, now time.Time) bool {
	if now.Unix() > expires {
		return false
	}

	expected := s.signature(key, expires)

	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

func (s *URLSigner) signature(key string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s\n%d", key, expires)

	return hex.EncodeToString(mac.Sum(nil))
}
