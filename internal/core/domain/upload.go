package domain

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
)

// Upload is a spreadsheet received from a client. Body is consumed once.
type Upload struct {
	Filename string
	Body     io.Reader
}

// Extension returns the lower-cased extension of the upload without the
// leading dot, or "" when the filename has none.
func (u Upload) Extension() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(strings.TrimSpace(u.Filename)), "."))
}

// Allowed reports whether the upload's extension is in allowed. The
// comparison ignores case and leading dots in allowed.
func (u Upload) Allowed(allowed []string) bool {
	ext := u.Extension()
	if ext == "" {
		return false
	}
	return slices.ContainsFunc(allowed, func(a string) bool {
		return strings.EqualFold(strings.TrimPrefix(strings.TrimSpace(a), "."), ext)
	})
}
