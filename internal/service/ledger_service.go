package service

import (
	"errors"

	"go-tuckshop-pos/internal/apperror"
	"go-tuckshop-pos/internal/model"
	"go-tuckshop-pos/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LedgerService owns every operation that mutates a product's stock level.
// Each operation runs inside one database transaction: the movement insert
// and the stocklevel write either both commit or both roll back. Reversals
// (refund, return) append compensating movements and never touch the row
// they reverse.
type LedgerService interface {
	RecordMovement(req *model.RecordMovementRequest) (*model.StockMovement, error)
	ProcessSale(items []model.SaleItem) error
	ProcessRefund(movementID uint, reason string) error
	ProcessReturn(movementID uint, reason string) error
	UpdateMovementReason(movementID uint, reason string) error
	MovementHistory() ([]repository.MovementEntry, error)
}

type ledgerService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	db           *gorm.DB
	log          *zap.Logger
}

func NewLedgerService(pRepo repository.ProductRepository, mRepo repository.MovementRepository, db *gorm.DB, log *zap.Logger) LedgerService {
	return &ledgerService{
		productRepo:  pRepo,
		movementRepo: mRepo,
		db:           db,
		log:          log,
	}
}

func (s *ledgerService) RecordMovement(req *model.RecordMovementRequest) (*model.StockMovement, error) {
	var created *model.StockMovement

	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindForUpdate(tx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("product with ID %d not found", req.ProductID)
			}
			return err
		}

		newStock := product.StockLevel + req.QuantityChange
		if newStock < 0 {
			return apperror.InsufficientStock(
				"movement of %d would drive stock of %q below zero (current: %d)",
				req.QuantityChange, product.Name, product.StockLevel)
		}

		movement := &model.StockMovement{
			ProductID:      &product.ItemID,
			ProductName:    product.Name,
			MovementType:   req.MovementType,
			QuantityChange: req.QuantityChange,
			Reason:         req.Reason,
		}
		if err := s.movementRepo.Create(tx, movement); err != nil {
			return err
		}
		if err := s.productRepo.UpdateStock(tx, product.ItemID, newStock); err != nil {
			return err
		}

		created = movement
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("stock movement recorded",
		zap.Uint("movementid", created.MovementID),
		zap.String("movementtype", string(created.MovementType)),
		zap.Int("quantitychange", created.QuantityChange))
	return created, nil
}

// ProcessSale deducts stock for every line item and appends a SALE movement
// per item. Stock is re-checked per item under the transaction's row lock;
// any shortfall aborts the entire sale, including deductions already applied
// to earlier items in the same call.
func (s *ledgerService) ProcessSale(items []model.SaleItem) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			product, err := s.productRepo.FindForUpdate(tx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperror.NotFound("product with ID %d not found", item.ProductID)
				}
				return err
			}

			if product.StockLevel < item.Quantity {
				return apperror.InsufficientStock(
					"insufficient stock for product %q: available %d, requested %d",
					product.Name, product.StockLevel, item.Quantity)
			}

			if err := s.productRepo.UpdateStock(tx, product.ItemID, product.StockLevel-item.Quantity); err != nil {
				return err
			}

			movement := &model.StockMovement{
				ProductID:      &product.ItemID,
				ProductName:    product.Name,
				MovementType:   model.MovementSale,
				QuantityChange: -item.Quantity,
				Reason:         "POS Sale",
			}
			if err := s.movementRepo.Create(tx, movement); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("sale completed", zap.Int("items", len(items)))
	return nil
}

// ProcessRefund reverses a prior SALE by restoring its quantity and
// appending a REFUND movement. The original SALE row is left untouched.
func (s *ledgerService) ProcessRefund(movementID uint, reason string) error {
	if reason == "" {
		reason = "Customer Refund"
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		movement, err := s.movementRepo.FindByIDAndType(tx, movementID, model.MovementSale)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("sale movement with ID %d not found", movementID)
			}
			return err
		}

		quantity := movement.QuantityChange
		if quantity < 0 {
			quantity = -quantity
		}

		// The sold product may have been deleted since; the refund movement
		// is still appended with the snapshotted name.
		productName := movement.ProductName
		if productName == "" {
			productName = "Unknown Product"
		}
		if movement.ProductID != nil {
			product, err := s.productRepo.FindForUpdate(tx, *movement.ProductID)
			if err == nil {
				productName = product.Name
				if err := s.productRepo.UpdateStock(tx, product.ItemID, product.StockLevel+quantity); err != nil {
					return err
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		refund := &model.StockMovement{
			ProductID:      movement.ProductID,
			ProductName:    productName,
			MovementType:   model.MovementRefund,
			QuantityChange: quantity,
			Reason:         reason,
		}
		return s.movementRepo.Create(tx, refund)
	})
}

// ProcessReturn reverses a prior PURCHASE by removing its quantity from
// stock and appending a RETURN movement. Rejected when the purchased stock
// has already been consumed below the returnable amount.
func (s *ledgerService) ProcessReturn(movementID uint, reason string) error {
	if reason == "" {
		reason = "Purchase Return"
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		movement, err := s.movementRepo.FindByIDAndType(tx, movementID, model.MovementPurchase)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("purchase movement with ID %d not found", movementID)
			}
			return err
		}

		if movement.ProductID == nil {
			return apperror.NotFound("product for movement %d no longer exists", movementID)
		}
		product, err := s.productRepo.FindForUpdate(tx, *movement.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("product with ID %d not found", *movement.ProductID)
			}
			return err
		}

		purchaseQuantity := movement.QuantityChange
		if purchaseQuantity <= 0 {
			return apperror.Validation(
				"invalid purchase quantity %d: purchase movements must have positive quantity", purchaseQuantity)
		}

		newStock := product.StockLevel - purchaseQuantity
		if newStock < 0 {
			return apperror.InsufficientStock(
				"cannot return %d units of %q: current stock is %d",
				purchaseQuantity, product.Name, product.StockLevel)
		}

		if err := s.productRepo.UpdateStock(tx, product.ItemID, newStock); err != nil {
			return err
		}

		ret := &model.StockMovement{
			ProductID:      movement.ProductID,
			ProductName:    product.Name,
			MovementType:   model.MovementReturn,
			QuantityChange: -purchaseQuantity,
			Reason:         reason,
		}
		return s.movementRepo.Create(tx, ret)
	})
}

// UpdateMovementReason edits the single mutable field on a ledger row.
func (s *ledgerService) UpdateMovementReason(movementID uint, reason string) error {
	rows, err := s.movementRepo.UpdateReason(movementID, reason)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("movement with ID %d not found", movementID)
	}
	return nil
}

func (s *ledgerService) MovementHistory() ([]repository.MovementEntry, error) {
	return s.movementRepo.History()
}
