package model

import "github.com/shopspring/decimal"

// Request DTOs. Handlers validate these once at the boundary; services only
// ever receive already-validated values.

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"decimal_gte_zero"`
	StockLevel  int             `json:"stocklevel" validate:"gte=0"`
	IsActive    *bool           `json:"isactive"`
	CategoryID  *uint           `json:"categoryid"`
}

type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"decimal_gte_zero"`
	StockLevel  int             `json:"stocklevel" validate:"gte=0"`
	IsActive    *bool           `json:"isactive"`
	CategoryID  *uint           `json:"categoryid"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type RecordMovementRequest struct {
	ProductID      uint         `json:"productid" validate:"required"`
	MovementType   MovementType `json:"movementtype" validate:"required,oneof=SALE PURCHASE REFUND RETURN ADJUSTMENT"`
	QuantityChange int          `json:"quantitychange" validate:"required"`
	Reason         string       `json:"reason"`
}

type SaleItem struct {
	ProductID uint            `json:"productid" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

type CheckoutRequest struct {
	Items []SaleItem `json:"items" validate:"required,min=1,dive"`
}

type RefundRequest struct {
	MovementID uint   `json:"movementId" validate:"required"`
	Reason     string `json:"reason"`
}

type ReturnRequest struct {
	MovementID uint   `json:"movementId" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
}

type UpdateReasonRequest struct {
	Reason string `json:"reason" validate:"required"`
}
