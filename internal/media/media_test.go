package media

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Plain", in: "photo.png", want: "photo.png"},
		{name: "Spaces", in: "my photo.jpg", want: "my_photo.jpg"},
		{name: "PathTraversal", in: "../../etc/passwd", want: "passwd"},
		{name: "WindowsPath", in: `C:\Users\me\cat.gif`, want: "cat.gif"},
		{name: "NonASCII", in: "фото.png", want: "png"},
		{name: "HiddenFile", in: ".env", want: "env"},
		{name: "Empty", in: "", want: "upload"},
		{name: "OnlySymbols", in: "???", want: "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.in))
		})
	}
}

func TestFileName(t *testing.T) {
	first := FileName("cover image.png")
	second := FileName("cover image.png")

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}_cover_image\.png$`), first)
	assert.NotEqual(t, first, second)
}

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "uploads")

	storage, err := NewLocalStorage(root, "uploads")
	require.NoError(t, err)

	path, err := storage.Save(ctx, Upload{Filename: "cat.png", Body: strings.NewReader("meow")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "uploads/"))
	assert.True(t, strings.HasSuffix(path, "_cat.png"))

	data, err := os.ReadFile(filepath.Join(root, strings.TrimPrefix(path, "uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "meow", string(data))

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, storage.Remove(ctx, path))
		_, err := os.Stat(filepath.Join(root, strings.TrimPrefix(path, "uploads/")))
		assert.True(t, os.IsNotExist(err))

		assert.NoError(t, storage.Remove(ctx, path), "removing a missing file is not an error")
	})

	t.Run("RejectsForeignPaths", func(t *testing.T) {
		for _, p := range []string{"other/cat.png", "uploads/../secret", "uploads/", "/etc/passwd"} {
			assert.ErrorIs(t, storage.Remove(ctx, p), ErrInvalidPath, p)
		}
	})
}

func TestNew(t *testing.T) {
	t.Run("DefaultsToLocal", func(t *testing.T) {
		storage, err := New(Config{Root: t.TempDir()})
		require.NoError(t, err)

		local, ok := storage.(*LocalStorage)
		require.True(t, ok)
		assert.Equal(t, "uploads", local.Prefix())
	})

	t.Run("IncompleteS3", func(t *testing.T) {
		_, err := New(Config{Backend: BackendS3, S3: S3Config{Bucket: "images"}})
		assert.Error(t, err)
	})

	t.Run("S3", func(t *testing.T) {
		storage, err := New(Config{Backend: BackendS3, URLPrefix: "/media/", S3: S3Config{
			Bucket: "images", Region: "us-east-1", Endpoint: "http://localhost:9000", AccessKey: "key", SecretKey: "secret",
		}})
		require.NoError(t, err)
		assert.IsType(t, &S3Storage{}, storage)
		assert.ErrorIs(t, storage.Remove(context.Background(), "uploads/x.png"), ErrInvalidPath)
	})

	t.Run("UnknownBackend", func(t *testing.T) {
		_, err := New(Config{Backend: "ftp"})
		assert.Error(t, err)
	})
}
