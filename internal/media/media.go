package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

var ErrInvalidPath = errors.New("invalid media path")

// Upload is an uploaded image waiting to be stored.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// Storage keeps uploaded images. Save returns the relative path the image is
// addressed by, e.g. "uploads/<file>".
type Storage interface {
	Save(ctx context.Context, upload Upload) (string, error)
	Remove(ctx context.Context, path string) error
}

type Config struct {
	Backend   string
	Root      string
	URLPrefix string
	S3        S3Config
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// New creates the storage backend selected by the config.
func New(cfg Config) (Storage, error) {
	prefix := strings.Trim(cfg.URLPrefix, "/")
	if prefix == "" {
		prefix = "uploads"
	}

	switch cfg.Backend {
	case "", BackendLocal:
		storage, err := NewLocalStorage(cfg.Root, prefix)
		if err != nil {
			return nil, err
		}
		return storage, nil
	case BackendS3:
		storage, err := NewS3Storage(cfg.S3, prefix)
		if err != nil {
			return nil, err
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("unknown media backend %q", cfg.Backend)
	}
}

// FileName builds a unique stored name "<uuid-hex>_<sanitized name>".
func FileName(original string) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + SanitizeFileName(original)
}

// SanitizeFileName keeps the base name of an uploaded file restricted to
// ASCII letters, digits, dots, dashes and underscores.
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	sanitized := strings.Trim(b.String(), "._")
	if sanitized == "" {
		return "upload"
	}

	return sanitized
}

// objectName returns the stored file name of a path produced by Save.
func objectName(prefix, path string) (string, error) {
	name, ok := strings.CutPrefix(path, prefix+"/")
	if !ok || name == "" || strings.ContainsAny(name, `/\`) || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	return name, nil
}
