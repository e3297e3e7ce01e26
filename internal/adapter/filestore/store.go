// Package filestore keeps uploaded spreadsheets on local disk for the
// duration of a single request.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"ppc-optimizer/internal/config/configs"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// Store implements port.UploadStore on a local directory.
type Store struct {
	dir string
}

// New returns a Store rooted at cfg.Dir, creating the directory if needed.
func New(cfg configs.Upload) (*Store, error) {
	if cfg.Dir == "" {
		return nil, errors.New("upload dir is empty")
	}
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: cfg.Dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save copies body into a new file named after a random token and the
// sanitized client filename, returning its path. A partially written file
// is removed before returning an error.
func (s *Store) Save(ctx context.Context, filename string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, uuid.NewString()+"-"+SanitizeFilename(filename))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err = io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return path, nil
}

// Remove deletes a saved upload. Removing a file that is already gone is
// not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// SanitizeFilename reduces a client-supplied name to a safe base name:
// directory parts are dropped, runs of characters outside [A-Za-z0-9_.-]
// become "_" and leading dots or underscores are stripped.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = filepath.Base(strings.TrimSpace(name))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, "._")
	if name == "" {
		return "upload"
	}
	return name
}
