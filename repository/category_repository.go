package repository

import (
	"errors"

	"github.com/Diyary311/onlineMenu/entity"
	"gorm.io/gorm"
)

// ErrHasItems is returned by Delete when the category still owns items.
var ErrHasItems = errors.New("category has items")

// CategoryRepository reads and writes one kind's category table.
type CategoryRepository struct {
	DB   *gorm.DB
	Kind entity.Kind
}

func NewCategoryRepository(db *gorm.DB, kind entity.Kind) *CategoryRepository {
	return &CategoryRepository{DB: db, Kind: kind}
}

func (r *CategoryRepository) table(g *gorm.DB) *gorm.DB {
	return g.Table(r.Kind.CategoryTable())
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.table(r.DB).Order("id").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.table(r.DB).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) IDs() ([]uint, error) {
	var ids []uint
	err := r.table(r.DB).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *CategoryRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.table(r.DB).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.table(r.DB).Create(category).Error
}

func (r *CategoryRepository) UpdateName(id uint, name string) error {
	res := r.table(r.DB).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the category only while it owns no items. The child check
// and the delete run in one transaction so an item inserted in between
// cannot be orphaned.
func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table(r.Kind.ItemTable()).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrHasItems
		}
		res := r.table(tx).Where("id = ?", id).Delete(&entity.Category{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
