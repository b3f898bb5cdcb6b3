package service

import (
	"errors"

	"go-tuckshop-pos/internal/apperror"
	"go-tuckshop-pos/internal/model"
	"go-tuckshop-pos/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductService interface {
	CreateProduct(req *model.CreateProductRequest) (*model.Product, error)
	UpdateProduct(id uint, req *model.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(id uint) error
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	db           *gorm.DB
	log          *zap.Logger
}

func NewProductService(pRepo repository.ProductRepository, mRepo repository.MovementRepository, db *gorm.DB, log *zap.Logger) ProductService {
	return &productService{
		productRepo:  pRepo,
		movementRepo: mRepo,
		db:           db,
		log:          log,
	}
}

// CreateProduct inserts the product and, when an initial stock quantity is
// given, records it as a PURCHASE movement in the same transaction so the
// ledger accounts for every unit the product has ever held.
func (s *productService) CreateProduct(req *model.CreateProductRequest) (*model.Product, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		StockLevel:  req.StockLevel,
		IsActive:    isActive,
		CategoryID:  req.CategoryID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.Create(tx, product); err != nil {
			return err
		}

		if product.StockLevel > 0 {
			movement := &model.StockMovement{
				ProductID:      &product.ItemID,
				ProductName:    product.Name,
				MovementType:   model.MovementPurchase,
				QuantityChange: product.StockLevel,
				Reason:         "Initial stock",
			}
			if err := s.movementRepo.Create(tx, movement); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("product created",
		zap.Uint("itemid", product.ItemID),
		zap.String("name", product.Name),
		zap.Int("stocklevel", product.StockLevel))
	return product, nil
}

// UpdateProduct saves the new field values; a stock delta is recorded as a
// PURCHASE (increase) or ADJUSTMENT (decrease) movement in the same
// transaction.
func (s *productService) UpdateProduct(id uint, req *model.UpdateProductRequest) (*model.Product, error) {
	var updated *model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.productRepo.FindForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("product with ID %d not found", id)
			}
			return err
		}

		delta := req.StockLevel - existing.StockLevel

		existing.Name = req.Name
		existing.Description = req.Description
		existing.Price = req.Price
		existing.StockLevel = req.StockLevel
		existing.CategoryID = req.CategoryID
		if req.IsActive != nil {
			existing.IsActive = *req.IsActive
		}

		if err := s.productRepo.Save(tx, existing); err != nil {
			return err
		}

		if delta != 0 {
			movementType := model.MovementPurchase
			if delta < 0 {
				movementType = model.MovementAdjustment
			}
			movement := &model.StockMovement{
				ProductID:      &existing.ItemID,
				ProductName:    existing.Name,
				MovementType:   movementType,
				QuantityChange: delta,
				Reason:         "Product update",
			}
			if err := s.movementRepo.Create(tx, movement); err != nil {
				return err
			}
		}

		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProduct records a zeroing ADJUSTMENT before removing the row, so the
// audit trail stays complete. The FK sets productid to NULL on the product's
// movements while the denormalized product_name snapshot survives.
func (s *productService) DeleteProduct(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("product with ID %d not found", id)
			}
			return err
		}

		if product.StockLevel != 0 {
			movement := &model.StockMovement{
				ProductID:      &product.ItemID,
				ProductName:    product.Name,
				MovementType:   model.MovementAdjustment,
				QuantityChange: -product.StockLevel,
				Reason:         "Product deleted",
			}
			if err := s.movementRepo.Create(tx, movement); err != nil {
				return err
			}
			if err := s.productRepo.UpdateStock(tx, product.ItemID, 0); err != nil {
				return err
			}
		}

		return s.productRepo.Delete(tx, product.ItemID)
	})
	if err != nil {
		return err
	}

	s.log.Info("product deleted", zap.Uint("itemid", id))
	return nil
}

func (s *productService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("product with ID %d not found", id)
		}
		return nil, err
	}
	return product, nil
}
