package repository

import (
	"time"

	"go-tuckshop-pos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PopularItem is a product ranked by quantity sold within a window.
type PopularItem struct {
	ProductName  string `json:"product_name"`
	QuantitySold int64  `json:"quantity_sold"`
}

// LowStockItem is a product at or below the safety stock level.
type LowStockItem struct {
	ProductID   uint   `gorm:"column:productid" json:"productid"`
	Name        string `gorm:"column:name" json:"name"`
	Stock       int    `gorm:"column:stock" json:"stock"`
	SafetyLevel int    `gorm:"-" json:"safety_level"`
}

type DashboardRepository interface {
	MovementValueSince(movementType model.MovementType, since time.Time) (decimal.Decimal, error)
	MovementCountSince(movementType model.MovementType, since time.Time) (int64, error)
	MostPopularSince(since time.Time) (*PopularItem, error)
	TotalInventoryValue() (decimal.Decimal, error)
	LowStock(threshold, limit int) ([]LowStockItem, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

// MovementValueSince sums abs(quantitychange) * current product price over
// movements of the given type since the cutoff. Coalesces to 0 when no rows
// qualify.
func (r *dashboardRepo) MovementValueSince(movementType model.MovementType, since time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.Table("stockmovements AS sm").
		Joins("LEFT JOIN product p ON sm.productid = p.itemid").
		Where("sm.movementtype = ? AND sm.movementtimestamp >= ?", movementType, since).
		Select("COALESCE(SUM(ABS(sm.quantitychange) * p.price), 0) AS total").
		Scan(&row).Error
	return row.Total, err
}

func (r *dashboardRepo) MovementCountSince(movementType model.MovementType, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.StockMovement{}).
		Where("movementtype = ? AND movementtimestamp >= ?", movementType, since).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepo) MostPopularSince(since time.Time) (*PopularItem, error) {
	var items []PopularItem
	err := r.db.Table("stockmovements AS sm").
		Joins("LEFT JOIN product p ON sm.productid = p.itemid").
		Where("sm.movementtype = ? AND sm.movementtimestamp >= ?", model.MovementSale, since).
		Group("p.name").
		Select("p.name AS product_name, SUM(ABS(sm.quantitychange)) AS quantity_sold").
		Order("quantity_sold DESC").
		Limit(1).
		Scan(&items).Error
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}

func (r *dashboardRepo) TotalInventoryValue() (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(price * stocklevel), 0) AS total").
		Scan(&row).Error
	return row.Total, err
}

func (r *dashboardRepo) LowStock(threshold, limit int) ([]LowStockItem, error) {
	var items []LowStockItem
	err := r.db.Model(&model.Product{}).
		Where("stocklevel <= ? AND isactive = ?", threshold, true).
		Select("itemid AS productid, name, stocklevel AS stock").
		Order("stocklevel ASC").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].SafetyLevel = threshold
	}
	return items, nil
}
