package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/doarbem/donation-api/internal/storage"
)

const (
	signedURLTTL        = 15 * time.Minute
	maxUploadSize int64 = 10 << 20
)

var (
	ErrFileNotFound     = storage.ErrObjectNotFound
	ErrInvalidSignature = errors.New("download signature is invalid or expired")
	ErrEmptyFile        = errors.New("file content is empty")
	ErrFileTooLarge     = errors.New("file exceeds the upload size limit")
)

type FileService struct {
	store  *storage.FileStore
	signer *storage.URLSigner
	now    func() time.Time
}

func NewFileService(store *storage.FileStore, signer *storage.URLSigner) *FileService {
	return &FileService{
		store:  store,
		signer: signer,
		now:    time.Now,
	}
}

type UploadedFile struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type SignedFileURL struct {
	URL     string    `json:"url"`
	Expires time.Time `json:"expires"`
}

// Upload stores the file under a generated key, keeping the original
// extension so content type survives a round trip.
func (s *FileService) Upload(ctx context.Context, filename, contentType string, data []byte) (UploadedFile, error) {
	if len(data) == 0 {
		return UploadedFile{}, ErrEmptyFile
	}
	if int64(len(data)) > maxUploadSize {
		return UploadedFile{}, ErrFileTooLarge
	}

	key := uuid.NewString() + path.Ext(filename)

	obj, err := s.store.Write(ctx, key, contentType, data)
	if err != nil {
		return UploadedFile{}, fmt.Errorf("s.store.Write -> %w", err)
	}

	url, _ := s.signer.SignedURL(obj.Key, signedURLTTL, s.now())

	return UploadedFile{
		Key:         obj.Key,
		URL:         url,
		ContentType: obj.ContentType,
		Size:        obj.Size,
	}, nil
}

// Fetch returns a fresh signed URL for an existing object.
func (s *FileService) Fetch(ctx context.Context, key string) (SignedFileURL, error) {
	if _, err := s.store.Stat(ctx, key); err != nil {
		return SignedFileURL{}, fmt.Errorf("s.store.Stat -> %w", err)
	}

	url, expires := s.signer.SignedURL(key, signedURLTTL, s.now())

	return SignedFileURL{URL: url, Expires: expires}, nil
}

func (s *FileService) Delete(ctx context.Context, key string) error {
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("s.store.Delete -> %w", err)
	}

	return nil
}

// Download verifies the signature before handing back the object bytes.
func (s *FileService) Download(ctx context.Context, key string, expires int64, signature string) (storage.Object, []byte, error) {
	if !s.signer.Verify(key, expires, signature, s.now()) {
		return storage.Object{}, nil, ErrInvalidSignature
	}

	obj, data, err := s.store.Read(ctx, key)
	if err != nil {
		return storage.Object{}, nil, fmt.Errorf("s.store.Read -> %w", err)
	}

	return obj, data, nil
}
