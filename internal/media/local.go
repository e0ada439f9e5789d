package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage keeps images in a directory on disk served under the URL prefix.
type LocalStorage struct {
	root   string
	prefix string
}

func NewLocalStorage(root, prefix string) (*LocalStorage, error) {
	if root == "" {
		return nil, errors.New("media root is empty")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}

	return &LocalStorage{
		root:   root,
		prefix: prefix,
	}, nil
}

func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) Prefix() string {
	return s.prefix
}

func (s *LocalStorage) Save(_ context.Context, upload Upload) (string, error) {
	name := FileName(upload.Filename)

	f, err := os.OpenFile(filepath.Join(s.root, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}

	if _, err := io.Copy(f, upload.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write media file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close media file: %w", err)
	}

	return s.prefix + "/" + name, nil
}

// Remove deletes a stored image. Removing a missing file is not an error.
func (s *LocalStorage) Remove(_ context.Context, path string) error {
	name, err := objectName(s.prefix, path)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.root, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove media file: %w", err)
	}

	return nil
}
