package repository

import (
	"time"

	"go-tuckshop-pos/internal/model"

	"gorm.io/gorm"
)

// MovementEntry is a history row joined to a product name. The denormalized
// snapshot wins, then the live product name, then a literal placeholder.
type MovementEntry struct {
	MovementID        uint      `gorm:"column:movementid" json:"movementid"`
	ProductID         *uint     `gorm:"column:productid" json:"productid"`
	MovementType      string    `gorm:"column:movementtype" json:"movementtype"`
	QuantityChange    int       `gorm:"column:quantitychange" json:"quantitychange"`
	Reason            string    `gorm:"column:reason" json:"reason"`
	MovementTimestamp time.Time `gorm:"column:movementtimestamp" json:"movementtimestamp"`
	ProductName       string    `gorm:"column:product_name" json:"product_name"`
}

type MovementRepository interface {
	Create(tx *gorm.DB, movement *model.StockMovement) error
	FindByIDAndType(tx *gorm.DB, id uint, movementType model.MovementType) (*model.StockMovement, error)
	UpdateReason(id uint, reason string) (int64, error)
	History() ([]MovementEntry, error)
}

type movementRepo struct {
	db *gorm.DB
}

func NewMovementRepo(db *gorm.DB) MovementRepository {
	return &movementRepo{db}
}

func (r *movementRepo) Create(tx *gorm.DB, movement *model.StockMovement) error {
	return tx.Create(movement).Error
}

func (r *movementRepo) FindByIDAndType(tx *gorm.DB, id uint, movementType model.MovementType) (*model.StockMovement, error) {
	var movement model.StockMovement
	err := tx.First(&movement, "movementid = ? AND movementtype = ?", id, movementType).Error
	if err != nil {
		return nil, err
	}
	return &movement, nil
}

func (r *movementRepo) UpdateReason(id uint, reason string) (int64, error) {
	res := r.db.Model(&model.StockMovement{}).
		Where("movementid = ?", id).
		Update("reason", reason)
	return res.RowsAffected, res.Error
}

func (r *movementRepo) History() ([]MovementEntry, error) {
	var entries []MovementEntry
	err := r.db.Table("stockmovements AS sm").
		Select(`sm.movementid, sm.productid, sm.movementtype, sm.quantitychange, sm.reason, sm.movementtimestamp,
			COALESCE(NULLIF(sm.product_name, ''), p.name, 'Unknown Product') AS product_name`).
		Joins("LEFT JOIN product p ON sm.productid = p.itemid").
		Order("sm.movementtimestamp DESC, sm.movementid DESC").
		Scan(&entries).Error
	return entries, err
}
