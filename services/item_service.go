package services

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/Diyary311/onlineMenu/entity"
	"github.com/Diyary311/onlineMenu/repository"
	"gorm.io/gorm"
)

// ItemInput carries the writable item fields from a create or update form.
type ItemInput struct {
	Name        string
	Price       float64
	Size        float64
	TypeOfMoney string
	CategoryID  uint
}

// ItemService holds the item rules for one kind: required fields, category
// references that must resolve, and the image write/replace/remove workflow.
type ItemService struct {
	Items      *repository.ItemRepository
	Categories *repository.CategoryRepository
	Images     *ImageStore
}

func NewItemService(items *repository.ItemRepository, categories *repository.CategoryRepository, images *ImageStore) *ItemService {
	return &ItemService{Items: items, Categories: categories, Images: images}
}

func (s *ItemService) Kind() entity.Kind {
	return s.Items.Kind
}

// List returns every item of the kind with its category name inlined.
func (s *ItemService) List() ([]entity.ItemWithCategory, error) {
	return s.Items.FindAllWithCategory()
}

func (s *ItemService) validate(in ItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return validationf("Name is required.")
	}
	if in.Price <= 0 {
		return validationf("Price must be positive.")
	}
	return nil
}

// Create validates the input, stores the image (when given) and then inserts
// the record. The file is written first so a committed record never points
// at a missing file; if the insert fails the fresh file is cleaned up.
func (s *ItemService) Create(in ItemInput, image *multipart.FileHeader) (*entity.ItemWithCategory, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	ok, err := s.Categories.Exists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		ids, err := s.Categories.IDs()
		if err != nil {
			return nil, err
		}
		return nil, &ValidationError{Message: "Invalid CategoryId", ValidCategoryIDs: ids}
	}

	if strings.TrimSpace(in.TypeOfMoney) == "" {
		in.TypeOfMoney = entity.DefaultTypeOfMoney
	}

	var imagePath string
	if image != nil {
		imagePath, err = s.Images.Save(image)
		if err != nil {
			return nil, err
		}
	}

	item := &entity.Item{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Size:        in.Size,
		TypeOfMoney: in.TypeOfMoney,
		ImageUrl:    imagePath,
		CategoryID:  in.CategoryID,
	}
	if err := s.Items.Create(item); err != nil {
		if imagePath != "" {
			if rmErr := s.Images.Remove(imagePath); rmErr != nil {
				log.Printf("remove orphaned image %s: %v", imagePath, rmErr)
			}
		}
		return nil, err
	}

	return s.Items.FindWithCategoryByID(item.ID)
}

// Update overwrites the item's fields. A nonzero CategoryID must resolve. A
// new image is written before the record update; the replaced file is
// deleted afterwards, best-effort.
func (s *ItemService) Update(id uint, in ItemInput, image *multipart.FileHeader) (*entity.ItemWithCategory, error) {
	item, err := s.Items.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.validate(in); err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Price = in.Price
	item.Size = in.Size
	if strings.TrimSpace(in.TypeOfMoney) != "" {
		item.TypeOfMoney = in.TypeOfMoney
	}

	if in.CategoryID != 0 {
		ok, err := s.Categories.Exists(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, validationf("Invalid CategoryId")
		}
		item.CategoryID = in.CategoryID
	}

	oldImage := item.ImageUrl
	var newImage string
	if image != nil {
		newImage, err = s.Images.Save(image)
		if err != nil {
			return nil, err
		}
		item.ImageUrl = newImage
	}

	if err := s.Items.Save(item); err != nil {
		if newImage != "" {
			if rmErr := s.Images.Remove(newImage); rmErr != nil {
				log.Printf("remove orphaned image %s: %v", newImage, rmErr)
			}
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if newImage != "" && oldImage != "" {
		if rmErr := s.Images.Remove(oldImage); rmErr != nil {
			log.Printf("remove replaced image %s: %v", oldImage, rmErr)
		}
	}

	return s.Items.FindWithCategoryByID(item.ID)
}

// Delete removes the backing image best-effort, then the record.
func (s *ItemService) Delete(id uint) error {
	item, err := s.Items.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if item.ImageUrl != "" {
		if rmErr := s.Images.Remove(item.ImageUrl); rmErr != nil {
			log.Printf("remove image %s: %v", item.ImageUrl, rmErr)
		}
	}

	if err := s.Items.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
