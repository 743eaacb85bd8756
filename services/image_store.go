package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// imageFolder is the public segment item pictures are served under.
const imageFolder = "Images"

// ImageStore writes uploaded item pictures below a root directory and hands
// back the public /Images/ path recorded on the item.
type ImageStore struct {
	Root string
}

func NewImageStore(root string) *ImageStore {
	return &ImageStore{Root: root}
}

// Dir is the directory to mount under the static /Images/ route.
func (s *ImageStore) Dir() string {
	return filepath.Join(s.Root, imageFolder)
}

// Save stores the upload under a fresh unique filename so concurrent uploads
// never collide, and returns its public path.
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write image file: %w", err)
	}

	return "/" + imageFolder + "/" + name, nil
}

// Remove deletes the file behind a public image path. A blank path is a
// no-op.
func (s *ImageStore) Remove(publicPath string) error {
	if publicPath == "" {
		return nil
	}
	rel := strings.TrimPrefix(publicPath, "/")
	return os.Remove(filepath.Join(s.Root, filepath.FromSlash(rel)))
}
