package port

import (
	"context"
	"io"

	"ppc-optimizer/internal/core/domain"
)

// UploadStore keeps an uploaded file on disk while it is processed. It is
// an outbound port; implementations must be safe for concurrent use.
type UploadStore interface {
	// Save writes body under a unique name derived from filename and
	// returns the path of the stored file.
	Save(ctx context.Context, filename string, body io.Reader) (string, error)
	// Remove deletes a stored file. Removing a missing file is not an error.
	Remove(path string) error
}

// SheetReader decodes a stored spreadsheet into a Sheet.
type SheetReader interface {
	// ReadSheet returns the first worksheet of the file at path. Content
	// that cannot be decoded yields a *domain.ParseError.
	ReadSheet(ctx context.Context, path string) (*domain.Sheet, error)
}
