package repository

import (
	"go-tuckshop-pos/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(tx *gorm.DB, product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindForUpdate(tx *gorm.DB, id uint) (*model.Product, error)
	Save(tx *gorm.DB, product *model.Product) error
	UpdateStock(tx *gorm.DB, id uint, newStock int) error
	Delete(tx *gorm.DB, id uint) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(tx *gorm.DB, product *model.Product) error {
	return tx.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Order("itemid ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "itemid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindForUpdate reads a product inside tx with a pessimistic row lock so the
// stock check and the stock write see the same committed state. FOR UPDATE is
// postgres syntax; SQLite serializes writers with a database-level lock, so
// the clause is skipped there.
func (r *productRepo) FindForUpdate(tx *gorm.DB, id uint) (*model.Product, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var product model.Product
	if err := q.First(&product, "itemid = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Save(tx *gorm.DB, product *model.Product) error {
	return tx.Save(product).Error
}

func (r *productRepo) UpdateStock(tx *gorm.DB, id uint, newStock int) error {
	return tx.Model(&model.Product{}).
		Where("itemid = ?", id).
		Update("stocklevel", newStock).Error
}

func (r *productRepo) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Product{}, "itemid = ?", id).Error
}
