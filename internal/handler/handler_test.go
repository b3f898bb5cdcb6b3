package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-tuckshop-pos/internal/model"
	"go-tuckshop-pos/internal/repository"
	"go-tuckshop-pos/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Category{}, &model.Product{}, &model.StockMovement{}))

	log := zap.NewNop()
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	movementRepo := repository.NewMovementRepo(db)
	dashboardRepo := repository.NewDashboardRepo(db)

	ledgerService := service.NewLedgerService(productRepo, movementRepo, db, log)
	productService := service.NewProductService(productRepo, movementRepo, db, log)
	categoryService := service.NewCategoryService(categoryRepo)
	dashboardService := service.NewDashboardService(dashboardRepo, categoryRepo)

	productHandler := NewProductHandler(productService)
	categoryHandler := NewCategoryHandler(categoryService)
	movementHandler := NewMovementHandler(ledgerService)
	saleHandler := NewSaleHandler(ledgerService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/products", productHandler.GetProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/categories", categoryHandler.CreateCategory)
	api.Get("/movements", movementHandler.GetMovements)
	api.Post("/movements", movementHandler.RecordMovement)
	api.Post("/sales/checkout", saleHandler.Checkout)
	api.Post("/sales/refund", saleHandler.Refund)
	api.Get("/dashboard/metrics", dashboardHandler.GetMetrics)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func seedProduct(t *testing.T, db *gorm.DB, name string, stock int) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:       name,
		Price:      decimal.NewFromFloat(15.00),
		StockLevel: stock,
		IsActive:   true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestRecordMovementStatusCodes(t *testing.T) {
	app, db := setupTestApp(t)
	product := seedProduct(t, db, "Cola", 10)

	t.Run("created", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/movements", fiber.Map{
			"productid":      product.ItemID,
			"movementtype":   "PURCHASE",
			"quantitychange": 5,
		})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var movement model.StockMovement
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&movement))
		assert.NotZero(t, movement.MovementID)
		assert.Equal(t, 5, movement.QuantityChange)
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/movements", fiber.Map{
			"productid":      9999,
			"movementtype":   "PURCHASE",
			"quantitychange": 5,
		})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("negative stock result is 400", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/movements", fiber.Map{
			"productid":      product.ItemID,
			"movementtype":   "ADJUSTMENT",
			"quantitychange": -100,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad movement type is 400", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/movements", fiber.Map{
			"productid":      product.ItemID,
			"movementtype":   "TELEPORT",
			"quantitychange": 1,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCheckoutStatusCodes(t *testing.T) {
	app, db := setupTestApp(t)
	product := seedProduct(t, db, "Chips", 3)

	t.Run("success", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/sales/checkout", fiber.Map{
			"items": []fiber.Map{{"productid": product.ItemID, "quantity": 2}},
		})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("insufficient stock is 400", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/sales/checkout", fiber.Map{
			"items": []fiber.Map{{"productid": product.ItemID, "quantity": 50}},
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/sales/checkout", fiber.Map{
			"items": []fiber.Map{{"productid": 9999, "quantity": 1}},
		})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("empty items is 400", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/sales/checkout", fiber.Map{
			"items": []fiber.Map{},
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRefundStatusCodes(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/sales/refund", fiber.Map{
		"movementId": 9999,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCategoryConflict(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/categories", fiber.Map{"name": "Drinks"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/v1/categories", fiber.Map{"name": "Drinks"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestProductEndpoints(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("create with initial stock", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/products", fiber.Map{
			"name":       "Cola",
			"price":      "15.00",
			"stocklevel": 50,
		})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("negative price is 400", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/products", fiber.Map{
			"name":  "Bad",
			"price": "-1.00",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown id is 404, bad id is 400", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/v1/products/9999", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		resp = doJSON(t, app, "GET", "/api/v1/products/abc", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestDashboardEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, "GET", "/api/v1/dashboard/metrics", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var metrics map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&metrics))
	assert.Contains(t, metrics, "totalRevenueToday")
	assert.Contains(t, metrics, "lowStockItems")
}
