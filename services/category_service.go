package services

import (
	"errors"
	"strings"

	"github.com/Diyary311/onlineMenu/entity"
	"github.com/Diyary311/onlineMenu/repository"
	"gorm.io/gorm"
)

// CategoryService holds the category rules for one kind: non-blank names and
// the delete guard against orphaning items.
type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) Kind() entity.Kind {
	return s.Repo.Kind
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.FindAll()
}

func (s *CategoryService) Create(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("Name is required.")
	}
	category := &entity.Category{Name: name}
	if err := s.Repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(id uint, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("Name is required.")
	}
	if err := s.Repo.UpdateName(id, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// Delete refuses to remove a category that still owns items.
func (s *CategoryService) Delete(id uint) error {
	err := s.Repo.Delete(id)
	switch {
	case errors.Is(err, repository.ErrHasItems):
		return &ConflictError{Message: "Cannot delete category that has items."}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}
