package model

import "time"

type MovementType string

const (
	MovementSale       MovementType = "SALE"
	MovementPurchase   MovementType = "PURCHASE"
	MovementRefund     MovementType = "REFUND"
	MovementReturn     MovementType = "RETURN"
	MovementAdjustment MovementType = "ADJUSTMENT"
)

// StockMovement is one entry in the append-only stock ledger. Rows are only
// ever created by the ledger service; the sole mutable field is Reason.
// ProductName is a snapshot taken at movement time so the audit trail
// survives product deletion.
type StockMovement struct {
	MovementID        uint         `gorm:"column:movementid;primaryKey;autoIncrement" json:"movementid"`
	ProductID         *uint        `gorm:"column:productid" json:"productid"`
	ProductName       string       `gorm:"column:product_name;type:varchar(255)" json:"product_name"`
	MovementType      MovementType `gorm:"column:movementtype;type:varchar(20);not null" json:"movementtype"`
	QuantityChange    int          `gorm:"column:quantitychange;not null" json:"quantitychange"`
	Reason            string       `gorm:"column:reason;type:text" json:"reason"`
	MovementTimestamp time.Time    `gorm:"column:movementtimestamp;not null;autoCreateTime" json:"movementtimestamp"`

	Product *Product `gorm:"foreignKey:ProductID;references:ItemID;constraint:OnDelete:SET NULL" json:"-"`
}

func (StockMovement) TableName() string {
	return "stockmovements"
}
