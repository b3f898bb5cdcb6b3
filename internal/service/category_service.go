package service

import (
	"errors"

	"go-tuckshop-pos/internal/apperror"
	"go-tuckshop-pos/internal/model"
	"go-tuckshop-pos/internal/repository"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(name string) (*model.Category, error)
	UpdateCategory(id uint, name string) (*model.Category, error)
	DeleteCategory(id uint) error
	GetAllCategories() ([]model.Category, error)
	GetCategoryByID(id uint) (*model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(cRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: cRepo}
}

func (s *categoryService) CreateCategory(name string) (*model.Category, error) {
	category := &model.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("category name %q already exists", name)
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, name string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("category with ID %d not found", id)
		}
		return nil, err
	}

	category.Name = name
	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("category name %q already exists", name)
		}
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes the category; linked products are detached, not
// deleted.
func (s *categoryService) DeleteCategory(id uint) error {
	rows, err := s.categoryRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("category with ID %d not found", id)
	}
	return nil
}

func (s *categoryService) GetAllCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) GetCategoryByID(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("category with ID %d not found", id)
		}
		return nil, err
	}
	return category, nil
}
