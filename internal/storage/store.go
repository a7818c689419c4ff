package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	errInvalidKey     = errors.New("invalid object key")
)

// Object describes one stored file.
type Object struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// FileStore persists uploaded objects on the local filesystem. Content type
// is kept in a sidecar metadata file next to the object.
type FileStore struct {
	basePath string
}

func NewFileStore(basePath string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path -> %w", err)
	}

	return &FileStore{basePath: basePath}, nil
}

type objectMeta struct {
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

func (s *FileStore) Write(ctx context.Context, key, contentType string, data []byte) (Object, error) {
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return Object{}, err
	}

	fullPath := filepath.Join(s.basePath, filepath.FromSlash(cleanKey))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return Object{}, fmt.Errorf("storage: ensure directory -> %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return Object{}, fmt.Errorf("storage: write object -> %w", err)
	}

	meta := objectMeta{ContentType: contentType, Size: int64(len(data))}
	metaBytes, err := json.Marshal(meta)
	if err != nil {
		return Object{}, fmt.Errorf("storage: marshal metadata -> %w", err)
	}
	if err := os.WriteFile(fullPath+".meta", metaBytes, 0o644); err != nil {
		return Object{}, fmt.Errorf("storage: write metadata -> %w", err)
	}

	return Object{Key: cleanKey, ContentType: contentType, Size: meta.Size}, nil
}

func (s *FileStore) Read(ctx context.Context, key string) (Object, []byte, error) {
	if err := ctx.Err(); err != nil {
		return Object{}, nil, err
	}

	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return Object{}, nil, err
	}

	fullPath := filepath.Join(s.basePath, filepath.FromSlash(cleanKey))
	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Object{}, nil, ErrObjectNotFound
		}

		return Object{}, nil, fmt.Errorf("storage: read object -> %w", err)
	}

	obj := Object{Key: cleanKey, ContentType: "application/octet-stream", Size: int64(len(data))}
	if metaBytes, err := os.ReadFile(fullPath + ".meta"); err == nil {
		var meta objectMeta
		if err := json.Unmarshal(metaBytes, &meta); err == nil && meta.ContentType != "" {
			obj.ContentType = meta.ContentType
		}
	}

	return obj, data, nil
}

func (s *FileStore) Stat(ctx context.Context, key string) (Object, error) {
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return Object{}, err
	}

	fullPath := filepath.Join(s.basePath, filepath.FromSlash(cleanKey))
	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Object{}, ErrObjectNotFound
		}

		return Object{}, fmt.Errorf("storage: stat object -> %w", err)
	}

	return Object{Key: cleanKey, ContentType: "application/octet-stream", Size: info.Size()}, nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.basePath, filepath.FromSlash(cleanKey))
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return ErrObjectNotFound
		}

		return fmt.Errorf("storage: delete object -> %w", err)
	}
	_ = os.Remove(fullPath + ".meta")

	return nil
}

// sanitizeKey normalizes a key and rejects traversal outside the store root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(strings.TrimPrefix(key, "/"))
	if key == "" {
		return "", errInvalidKey
	}

	clean := path.Clean(key)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", errInvalidKey
	}

	return clean, nil
}
