package service

import (
	"testing"

	"go-tuckshop-pos/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Category{}, &model.Product{}, &model.StockMovement{}))
	return db
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:       name,
		Price:      decimal.NewFromFloat(price),
		StockLevel: stock,
		IsActive:   true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func ledgerSum(t *testing.T, db *gorm.DB, productID uint) int {
	t.Helper()

	var sum int
	err := db.Model(&model.StockMovement{}).
		Where("productid = ?", productID).
		Select("COALESCE(SUM(quantitychange), 0)").
		Scan(&sum).Error
	require.NoError(t, err)
	return sum
}

func movementCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.StockMovement{}).Count(&count).Error)
	return count
}
