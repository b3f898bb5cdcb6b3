package service

import (
	"testing"

	"go-tuckshop-pos/internal/apperror"
	"go-tuckshop-pos/internal/model"
	"go-tuckshop-pos/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProducts(db *gorm.DB) ProductService {
	return NewProductService(repository.NewProductRepo(db), repository.NewMovementRepo(db), db, testLogger())
}

func TestCreateProduct(t *testing.T) {
	t.Run("initial stock is recorded as a PURCHASE movement", func(t *testing.T) {
		db := setupTestDB(t)
		products := newProducts(db)

		product, err := products.CreateProduct(&model.CreateProductRequest{
			Name:       "Cola",
			Price:      decimal.NewFromFloat(15.00),
			StockLevel: 50,
		})
		require.NoError(t, err)
		assert.True(t, product.IsActive)

		var movement model.StockMovement
		require.NoError(t, db.First(&movement, "productid = ?", product.ItemID).Error)
		assert.Equal(t, model.MovementPurchase, movement.MovementType)
		assert.Equal(t, 50, movement.QuantityChange)
		assert.Equal(t, "Cola", movement.ProductName)
	})

	t.Run("zero initial stock records no movement", func(t *testing.T) {
		db := setupTestDB(t)
		products := newProducts(db)

		_, err := products.CreateProduct(&model.CreateProductRequest{
			Name:  "Juice",
			Price: decimal.NewFromFloat(12.00),
		})
		require.NoError(t, err)
		assert.EqualValues(t, 0, movementCount(t, db))
	})
}

func TestUpdateProduct(t *testing.T) {
	db := setupTestDB(t)
	products := newProducts(db)

	product, err := products.CreateProduct(&model.CreateProductRequest{
		Name:       "Chips",
		Price:      decimal.NewFromFloat(10.00),
		StockLevel: 20,
	})
	require.NoError(t, err)

	t.Run("stock increase is a PURCHASE", func(t *testing.T) {
		updated, err := products.UpdateProduct(product.ItemID, &model.UpdateProductRequest{
			Name:       "Chips",
			Price:      decimal.NewFromFloat(10.00),
			StockLevel: 30,
		})
		require.NoError(t, err)
		assert.Equal(t, 30, updated.StockLevel)

		var movement model.StockMovement
		require.NoError(t, db.Order("movementid DESC").First(&movement, "productid = ?", product.ItemID).Error)
		assert.Equal(t, model.MovementPurchase, movement.MovementType)
		assert.Equal(t, 10, movement.QuantityChange)
	})

	t.Run("stock decrease is an ADJUSTMENT", func(t *testing.T) {
		updated, err := products.UpdateProduct(product.ItemID, &model.UpdateProductRequest{
			Name:       "Chips",
			Price:      decimal.NewFromFloat(10.00),
			StockLevel: 25,
		})
		require.NoError(t, err)
		assert.Equal(t, 25, updated.StockLevel)

		var movement model.StockMovement
		require.NoError(t, db.Order("movementid DESC").First(&movement, "productid = ?", product.ItemID).Error)
		assert.Equal(t, model.MovementAdjustment, movement.MovementType)
		assert.Equal(t, -5, movement.QuantityChange)
	})

	t.Run("unchanged stock records nothing", func(t *testing.T) {
		before := movementCount(t, db)
		_, err := products.UpdateProduct(product.ItemID, &model.UpdateProductRequest{
			Name:       "Chips Deluxe",
			Price:      decimal.NewFromFloat(11.00),
			StockLevel: 25,
		})
		require.NoError(t, err)
		assert.Equal(t, before, movementCount(t, db))
	})

	t.Run("ledger stays complete across updates", func(t *testing.T) {
		var got model.Product
		require.NoError(t, db.First(&got, "itemid = ?", product.ItemID).Error)
		assert.Equal(t, ledgerSum(t, db, product.ItemID), got.StockLevel)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := products.UpdateProduct(9999, &model.UpdateProductRequest{
			Name:  "Ghost",
			Price: decimal.NewFromFloat(1.00),
		})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestDeleteProduct(t *testing.T) {
	db := setupTestDB(t)
	products := newProducts(db)

	product, err := products.CreateProduct(&model.CreateProductRequest{
		Name:       "Pie",
		Price:      decimal.NewFromFloat(25.00),
		StockLevel: 10,
	})
	require.NoError(t, err)

	require.NoError(t, products.DeleteProduct(product.ItemID))

	// Row is gone
	var count int64
	db.Model(&model.Product{}).Where("itemid = ?", product.ItemID).Count(&count)
	assert.EqualValues(t, 0, count)

	// A zeroing ADJUSTMENT was appended before deletion and the snapshot
	// name survives the FK nulling out productid
	var movements []model.StockMovement
	require.NoError(t, db.Order("movementid ASC").Find(&movements).Error)
	require.Len(t, movements, 2)

	adjustment := movements[1]
	assert.Equal(t, model.MovementAdjustment, adjustment.MovementType)
	assert.Equal(t, -10, adjustment.QuantityChange)
	assert.Nil(t, adjustment.ProductID)
	assert.Equal(t, "Pie", adjustment.ProductName)

	assert.ErrorIs(t, products.DeleteProduct(product.ItemID), apperror.ErrNotFound)
}
