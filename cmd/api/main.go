package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-tuckshop-pos/internal/handler"
	"go-tuckshop-pos/internal/model"
	"go-tuckshop-pos/internal/repository"
	"go-tuckshop-pos/internal/service"
	"go-tuckshop-pos/pkg/config"
	"go-tuckshop-pos/pkg/database"
	"go-tuckshop-pos/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Config + Logger
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// 2. Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := db.AutoMigrate(&model.Category{}, &model.Product{}, &model.StockMovement{}); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	seedCategories(db, log)

	// 3. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	movementRepo := repository.NewMovementRepo(db)
	dashboardRepo := repository.NewDashboardRepo(db)

	ledgerService := service.NewLedgerService(productRepo, movementRepo, db, log)
	productService := service.NewProductService(productRepo, movementRepo, db, log)
	categoryService := service.NewCategoryService(categoryRepo)
	dashboardService := service.NewDashboardService(dashboardRepo, categoryRepo)

	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	movementHandler := handler.NewMovementHandler(ledgerService)
	saleHandler := handler.NewSaleHandler(ledgerService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 4. Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Tuckshop POS v1.0",
	})

	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 5. Routes
	api := app.Group("/api/v1")

	api.Get("/products", productHandler.GetProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	api.Get("/categories", categoryHandler.GetCategories)
	api.Post("/categories", categoryHandler.CreateCategory)
	api.Get("/categories/:id", categoryHandler.GetCategory)
	api.Put("/categories/:id", categoryHandler.UpdateCategory)
	api.Delete("/categories/:id", categoryHandler.DeleteCategory)

	api.Get("/movements", movementHandler.GetMovements)
	api.Post("/movements", movementHandler.RecordMovement)
	api.Put("/movements/:id/reason", movementHandler.UpdateReason)

	api.Post("/sales/checkout", saleHandler.Checkout)
	api.Post("/sales/refund", saleHandler.Refund)
	api.Post("/sales/return", saleHandler.Return)

	api.Get("/dashboard/metrics", dashboardHandler.GetMetrics)

	// 6. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server exited")
}

// seedCategories creates the initial category set on an empty database.
func seedCategories(db *gorm.DB, log *zap.Logger) {
	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count > 0 {
		return
	}

	names := []string{
		"Drinks",
		"Energy Drinks",
		"Water & Juices",
		"Chips & Savoury Snacks",
		"Biscuits & Cookies",
		"Sweets & Chocolates",
		"Chewing Gum & Mints",
		"Fresh Fruit",
		"Groceries & Pantry",
		"Hot Foods",
		"Pies & Pastries",
		"Sandwiches & Rolls",
	}
	for _, name := range names {
		if err := db.Create(&model.Category{Name: name}).Error; err != nil {
			log.Warn("failed to seed category", zap.String("name", name), zap.Error(err))
		}
	}
	log.Info("seeded default categories", zap.Int("count", len(names)))
}
