// Package storage persists uploaded images and hands back the public path
// under which they are served.
package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

var (
	ErrNotImage = errors.New("only image files are allowed")
	ErrTooLarge = errors.New("image exceeds the upload size limit")
)

// ImageStore saves an uploaded image and returns the URL it is served at.
// Remove discards an image previously returned by Save.
type ImageStore interface {
	Save(fh *multipart.FileHeader) (string, error)
	Remove(url string) error
}

// DiskImageStore writes images into Dir and serves them under
// BaseURL + "/uploads/".
type DiskImageStore struct {
	Dir      string
	BaseURL  string
	MaxBytes int64
	now      func() time.Time
	suffix   func() string
}

// NewDiskImageStore creates dir if needed.
func NewDiskImageStore(dir, baseURL string, maxMB int) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &DiskImageStore{
		Dir:      dir,
		BaseURL:  strings.TrimRight(baseURL, "/"),
		MaxBytes: int64(maxMB) * 1024 * 1024,
		now:      time.Now,
		suffix:   func() string { return uuid.NewString()[:8] },
	}, nil
}

// Save stores fh as "<unix-millis>-<random>-<original name>".
func (s *DiskImageStore) Save(fh *multipart.FileHeader) (string, error) {
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", ErrNotImage
	}
	if s.MaxBytes > 0 && fh.Size > s.MaxBytes {
		return "", ErrTooLarge
	}
	name := fmt.Sprintf("%d-%s-%s", s.now().UnixMilli(), s.suffix(), filepath.Base(fh.Filename))
	if err := fasthttp.SaveMultipartFile(fh, filepath.Join(s.Dir, name)); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	return s.BaseURL + "/uploads/" + name, nil
}

// Remove deletes the file behind url. A file that is already gone is not an
// error.
func (s *DiskImageStore) Remove(url string) error {
	name := filepath.Base(strings.TrimPrefix(url, s.BaseURL+"/uploads/"))
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove upload %s: %w", name, err)
	}
	return nil
}
