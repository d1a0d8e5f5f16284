package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage stores uploads on the local filesystem under uploadDir and
// serves them back under /uploads/.
type LocalStorage struct {
	uploadDir string
}

func NewLocalStorage(uploadDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{uploadDir: uploadDir}, nil
}

// Save writes the content under a UUID-prefixed sanitized name so two
// uploads of "photo.jpg" never collide.
func (s *LocalStorage) Save(filename string, reader io.Reader) (string, error) {
	name := fmt.Sprintf("%s-%s", uuid.New().String(), sanitizeFilename(filename))
	path := filepath.Join(s.uploadDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/uploads/" + name, nil
}

func (s *LocalStorage) Open(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.uploadDir, filepath.Base(name)))
}

func (s *LocalStorage) Delete(name string) error {
	return os.Remove(filepath.Join(s.uploadDir, filepath.Base(name)))
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.ReplaceAll(name, " ", "-")
}
