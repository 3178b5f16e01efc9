// Package storage keeps attachment bytes on the local disk under generated names.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Save writes r under a fresh name keeping ext, and returns the stored name,
// its full path and the number of bytes written.
func (s *LocalStorage) Save(r io.Reader, ext string) (string, string, int64, error) {
	name := uuid.New().String() + sanitizeExt(ext)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", "", 0, fmt.Errorf("create %s: %w", name, err)
	}
	n, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", "", 0, fmt.Errorf("write %s: %w", name, err)
	}
	return name, path, n, nil
}

// Remove ignores files that are already gone.
func (s *LocalStorage) Remove(path string) error {
	if !s.contains(path) {
		return fmt.Errorf("refusing to remove %q outside upload dir", path)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStorage) contains(path string) bool {
	rel, err := filepath.Rel(s.dir, path)
	return err == nil && !strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel)
}

func sanitizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if len(ext) > 16 || !strings.HasPrefix(ext, ".") {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
