package configs

// Upload holds configuration for transient upload storage. Dir is where
// incoming spreadsheets are written while a request is processed;
// AllowedExtensions lists the accepted file extensions without the dot.
// MaxBytes caps the size of a multipart request body.
type Upload struct {
	// Dir is created on startup if it does not exist.
	Dir string `env:"DIR" envDefault:"uploads"`
	// AllowedExtensions is matched case-insensitively against the client
	// filename.
	AllowedExtensions []string `env:"ALLOWED_EXTENSIONS" envDefault:"xlsx,xls" envSeparator:","`
	// MaxBytes is the largest accepted request body. Defaults to 32 MiB.
	MaxBytes int64 `env:"MAX_BYTES" envDefault:"33554432"`
}
