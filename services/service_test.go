package services

import (
	"bytes"
	"mime/multipart"
	"path/filepath"
	"testing"

	"github.com/Diyary311/onlineMenu/configs"
	"github.com/Diyary311/onlineMenu/entity"
	"github.com/Diyary311/onlineMenu/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

type catalog struct {
	db         *gorm.DB
	categories *CategoryService
	items      *ItemService
	images     *ImageStore
}

func newCatalog(t *testing.T, kind entity.Kind) *catalog {
	t.Helper()
	return newCatalogOn(t, newTestDB(t), kind)
}

func newCatalogOn(t *testing.T, db *gorm.DB, kind entity.Kind) *catalog {
	t.Helper()
	catRepo := repository.NewCategoryRepository(db, kind)
	images := NewImageStore(t.TempDir())
	return &catalog{
		db:         db,
		categories: NewCategoryService(catRepo),
		items:      NewItemService(repository.NewItemRepository(db, kind), catRepo, images),
		images:     images,
	}
}

// fileHeader builds a real multipart file header the way gin would hand one
// to a controller.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("Image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["Image"][0]
}
