package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Diyary311/onlineMenu/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (c *catalog) mustCategory(t *testing.T, name string) *entity.Category {
	t.Helper()
	category, err := c.categories.Create(name)
	require.NoError(t, err)
	return category
}

// imageFile resolves an item's public image path to the file on disk.
func (c *catalog) imageFile(publicPath string) string {
	return filepath.Join(c.images.Root, filepath.FromSlash(strings.TrimPrefix(publicPath, "/")))
}

func TestItemCreateDefaults(t *testing.T) {
	cat := newCatalog(t, entity.KindFood)
	pizza := cat.mustCategory(t, "Pizza")

	item, err := cat.items.Create(ItemInput{Name: "Margherita", Price: 10, CategoryID: pizza.ID}, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultTypeOfMoney, item.TypeOfMoney)
	assert.Equal(t, "Pizza", item.CategoryName)
	assert.Zero(t, item.Size)
	assert.Empty(t, item.ImageUrl)
}

func TestItemCreateValidation(t *testing.T) {
	cat := newCatalog(t, entity.KindFood)
	pizza := cat.mustCategory(t, "Pizza")

	tests := []struct {
		name string
		in   ItemInput
	}{
		{"blank name", ItemInput{Name: " ", Price: 10, CategoryID: pizza.ID}},
		{"zero price", ItemInput{Name: "Margherita", Price: 0, CategoryID: pizza.ID}},
		{"negative price", ItemInput{Name: "Margherita", Price: -5, CategoryID: pizza.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cat.items.Create(tt.in, nil)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}

	items, err := cat.items.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemCreateInvalidCategory(t *testing.T) {
	cat := newCatalog(t, entity.KindFood)
	pizza := cat.mustCategory(t, "Pizza")
	burgers := cat.mustCategory(t, "Burgers")

	_, err := cat.items.Create(ItemInput{Name: "Margherita", Price: 10, CategoryID: 9999}, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid CategoryId", ve.Message)
	assert.ElementsMatch(t, []uint{pizza.ID, burgers.ID}, ve.ValidCategoryIDs)

	// nothing was written
	items, err := cat.items.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemCreateWithImage(t *testing.T) {
	cat := newCatalog(t, entity.KindSweet)
	sweets := cat.mustCategory(t, "Cakes")

	upload := fileHeader(t, "cake.png", []byte("png-bytes"))
	item, err := cat.items.Create(ItemInput{Name: "Cheesecake", Price: 7, CategoryID: sweets.ID}, upload)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(item.ImageUrl, "/Images/"))
	assert.True(t, strings.HasSuffix(item.ImageUrl, ".png"))

	content, err := os.ReadFile(cat.imageFile(item.ImageUrl))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)
}

func TestItemUpdate(t *testing.T) {
	cat := newCatalog(t, entity.KindDrink)
	juices := cat.mustCategory(t, "Juices")
	hot := cat.mustCategory(t, "Hot Drinks")

	item, err := cat.items.Create(ItemInput{Name: "Orange", Price: 3, CategoryID: juices.ID}, nil)
	require.NoError(t, err)

	updated, err := cat.items.Update(item.ID, ItemInput{
		Name:        "Fresh Orange",
		Price:       4,
		Size:        1.5,
		TypeOfMoney: "USD",
		CategoryID:  hot.ID,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Orange", updated.Name)
	assert.Equal(t, 4.0, updated.Price)
	assert.Equal(t, 1.5, updated.Size)
	assert.Equal(t, "USD", updated.TypeOfMoney)
	assert.Equal(t, "Hot Drinks", updated.CategoryName)
}

func TestItemUpdateUnknown(t *testing.T) {
	cat := newCatalog(t, entity.KindDrink)
	_, err := cat.items.Update(1234, ItemInput{Name: "Anything", Price: 1}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemUpdateInvalidCategory(t *testing.T) {
	cat := newCatalog(t, entity.KindFood)
	pizza := cat.mustCategory(t, "Pizza")

	item, err := cat.items.Create(ItemInput{Name: "Margherita", Price: 10, CategoryID: pizza.ID}, nil)
	require.NoError(t, err)

	var ve *ValidationError
	_, err = cat.items.Update(item.ID, ItemInput{Name: "Margherita", Price: 10, CategoryID: 777}, nil)
	require.ErrorAs(t, err, &ve)

	// zero CategoryId means "keep the current one"
	updated, err := cat.items.Update(item.ID, ItemInput{Name: "Margherita", Price: 12}, nil)
	require.NoError(t, err)
	assert.Equal(t, pizza.ID, updated.CategoryID)
}

func TestItemUpdateReplacesImage(t *testing.T) {
	cat := newCatalog(t, entity.KindFood)
	pizza := cat.mustCategory(t, "Pizza")

	item, err := cat.items.Create(
		ItemInput{Name: "Margherita", Price: 10, CategoryID: pizza.ID},
		fileHeader(t, "old.jpg", []byte("old")),
	)
	require.NoError(t, err)
	oldPath := item.ImageUrl

	updated, err := cat.items.Update(item.ID,
		ItemInput{Name: "Margherita", Price: 10},
		fileHeader(t, "new.jpg", []byte("new")),
	)
	require.NoError(t, err)
	require.NotEqual(t, oldPath, updated.ImageUrl)

	// new file readable, old file gone
	content, err := os.ReadFile(cat.imageFile(updated.ImageUrl))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), content)
	_, err = os.Stat(cat.imageFile(oldPath))
	assert.True(t, os.IsNotExist(err))
}

func TestItemCreateInsertFailureRemovesFreshImage(t *testing.T) {
	cat := newCatalog(t, entity.KindFood)
	pizza := cat.mustCategory(t, "Pizza")

	// make the insert itself fail after validation and the file write
	require.NoError(t, cat.db.Exec(
		`CREATE TRIGGER block_inserts BEFORE INSERT ON food_items
		 BEGIN SELECT RAISE(ABORT, 'insert blocked'); END`).Error)

	_, err := cat.items.Create(
		ItemInput{Name: "Margherita", Price: 10, CategoryID: pizza.ID},
		fileHeader(t, "pic.png", []byte("png-bytes")),
	)
	require.Error(t, err)

	// the freshly written file must not be left behind
	entries, err := os.ReadDir(cat.images.Dir())
	if err != nil {
		require.True(t, os.IsNotExist(err))
	} else {
		assert.Empty(t, entries)
	}
}

func TestItemUpdateSaveFailureKeepsOldImage(t *testing.T) {
	cat := newCatalog(t, entity.KindFood)
	pizza := cat.mustCategory(t, "Pizza")

	item, err := cat.items.Create(
		ItemInput{Name: "Margherita", Price: 10, CategoryID: pizza.ID},
		fileHeader(t, "old.jpg", []byte("old")),
	)
	require.NoError(t, err)

	require.NoError(t, cat.db.Exec(
		`CREATE TRIGGER block_updates BEFORE UPDATE ON food_items
		 BEGIN SELECT RAISE(ABORT, 'update blocked'); END`).Error)

	_, err = cat.items.Update(item.ID,
		ItemInput{Name: "Margherita", Price: 10},
		fileHeader(t, "new.jpg", []byte("new")),
	)
	require.Error(t, err)

	// the old file survives, the fresh one is cleaned up
	content, err := os.ReadFile(cat.imageFile(item.ImageUrl))
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), content)

	entries, err := os.ReadDir(cat.images.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestItemDelete(t *testing.T) {
	cat := newCatalog(t, entity.KindFood)
	pizza := cat.mustCategory(t, "Pizza")

	item, err := cat.items.Create(
		ItemInput{Name: "Margherita", Price: 10, CategoryID: pizza.ID},
		fileHeader(t, "pic.jpg", []byte("pic")),
	)
	require.NoError(t, err)

	require.NoError(t, cat.items.Delete(item.ID))

	items, err := cat.items.List()
	require.NoError(t, err)
	assert.Empty(t, items)
	_, err = os.Stat(cat.imageFile(item.ImageUrl))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, cat.items.Delete(item.ID), ErrNotFound)
}
