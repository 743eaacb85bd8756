package repository

import (
	"fmt"

	"github.com/Diyary311/onlineMenu/entity"
	"gorm.io/gorm"
)

// ItemRepository reads and writes one kind's item table.
type ItemRepository struct {
	DB   *gorm.DB
	Kind entity.Kind
}

func NewItemRepository(db *gorm.DB, kind entity.Kind) *ItemRepository {
	return &ItemRepository{DB: db, Kind: kind}
}

func (r *ItemRepository) table(g *gorm.DB) *gorm.DB {
	return g.Table(r.Kind.ItemTable())
}

// FindAllWithCategory lists every item joined with its category's name.
func (r *ItemRepository) FindAllWithCategory() ([]entity.ItemWithCategory, error) {
	var items []entity.ItemWithCategory
	err := r.DB.
		Table(r.Kind.ItemTable()+" AS i").
		Select("i.id, i.name, i.price, i.size, i.type_of_money, i.image_url, i.category_id, c.name AS category_name").
		Joins(fmt.Sprintf("LEFT JOIN %s AS c ON c.id = i.category_id", r.Kind.CategoryTable())).
		Order("i.id").
		Scan(&items).Error
	return items, err
}

func (r *ItemRepository) FindWithCategoryByID(id uint) (*entity.ItemWithCategory, error) {
	var item entity.ItemWithCategory
	res := r.DB.
		Table(r.Kind.ItemTable()+" AS i").
		Select("i.id, i.name, i.price, i.size, i.type_of_money, i.image_url, i.category_id, c.name AS category_name").
		Joins(fmt.Sprintf("LEFT JOIN %s AS c ON c.id = i.category_id", r.Kind.CategoryTable())).
		Where("i.id = ?", id).
		Scan(&item)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (r *ItemRepository) FindByID(id uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.table(r.DB).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) Create(item *entity.Item) error {
	return r.table(r.DB).Create(item).Error
}

func (r *ItemRepository) Save(item *entity.Item) error {
	res := r.table(r.DB).Where("id = ?", item.ID).Updates(map[string]any{
		"name":          item.Name,
		"price":         item.Price,
		"size":          item.Size,
		"type_of_money": item.TypeOfMoney,
		"image_url":     item.ImageUrl,
		"category_id":   item.CategoryID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(id uint) error {
	res := r.table(r.DB).Where("id = ?", id).Delete(&entity.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
