package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes uploaded images to local disk under a single directory.
// Filenames get a random suffix so concurrent uploads never collide.
type Store struct {
	dir      string
	maxBytes int64
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// Dir returns the directory uploads are written to.
func (s *Store) Dir() string {
	return s.dir
}

// SaveImage validates and writes one uploaded file, returning its public URL
// path ("/uploads/<name>").
func (s *Store) SaveImage(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxBytes {
		return "", fmt.Errorf("file %s exceeds the %d byte limit", fh.Filename, s.maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("file type %s is not allowed", ext)
	}

	base := strings.TrimSuffix(filepath.Base(fh.Filename), filepath.Ext(fh.Filename))
	base = sanitize(base)
	name := fmt.Sprintf("%s-%s%s", base, uuid.New().String(), ext)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, s.maxBytes)); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/uploads/" + name, nil
}

// Remove deletes a stored file given its public URL path. Used to undo
// uploads when the enclosing database transaction fails.
func (s *Store) Remove(urlPath string) error {
	name := filepath.Base(urlPath)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "image"
	}
	return b.String()
}
