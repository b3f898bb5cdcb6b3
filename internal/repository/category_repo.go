package repository

import (
	"go-tuckshop-pos/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll() ([]model.Category, error)
	FindByID(id uint) (*model.Category, error)
	Update(category *model.Category) error
	Delete(id uint) (int64, error)
	Count() (int64, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("categoryid ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "categoryid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

// Delete removes the category row; products referencing it are detached via
// the ON DELETE SET NULL constraint, never deleted.
func (r *categoryRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.Category{}, "categoryid = ?", id)
	return res.RowsAffected, res.Error
}

func (r *categoryRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Category{}).Count(&count).Error
	return count, err
}
