package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore keeps uploaded images under a single root directory. Files are
// addressed by the relative URL path stored in the database, following the
// /uploads/<category>/<filename> convention served by the static route.
type ImageStore struct {
	root string
}

func NewImageStore(root string) *ImageStore {
	return &ImageStore{root: root}
}

// Save writes a new image under the given category and returns its relative
// URL path. Filenames are random, so an upload never overwrites another
// post's file; O_EXCL guards the write-once rule.
func (s *ImageStore) Save(category, originalFilename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.New().String() + strings.ToLower(filepath.Ext(originalFilename))
	f, err := os.OpenFile(filepath.Join(dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return "/uploads/" + category + "/" + filename, nil
}

// Remove unlinks the file behind a relative URL path. A missing file is not
// an error, so removal is idempotent.
func (s *ImageStore) Remove(relURL string) error {
	path, err := s.resolve(relURL)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return os.Remove(path)
}

// Exists reports whether the file behind a relative URL path is on disk.
func (s *ImageStore) Exists(relURL string) bool {
	path, err := s.resolve(relURL)
	if err != nil {
		return false
	}

	_, err = os.Stat(path)
	return err == nil
}

// resolve maps /uploads/<category>/<filename> to an absolute path under the
// store root, rejecting anything that escapes it.
func (s *ImageStore) resolve(relURL string) (string, error) {
	rel, ok := strings.CutPrefix(relURL, "/uploads/")
	if !ok {
		return "", fmt.Errorf("invalid image path: %s", relURL)
	}

	path := filepath.Join(s.root, filepath.FromSlash(rel))

	absRoot, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if absPath != absRoot && !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid image path: %s", relURL)
	}

	return absPath, nil
}
