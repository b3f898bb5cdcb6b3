package service

import (
	"time"

	"go-tuckshop-pos/internal/model"
	"go-tuckshop-pos/internal/repository"

	"github.com/shopspring/decimal"
)

// SafetyStockLevel is the threshold at or below which a product counts as
// low stock on the dashboard.
const SafetyStockLevel = 5

const lowStockLimit = 10

type DashboardMetrics struct {
	TotalRevenueToday      decimal.Decimal           `json:"totalRevenueToday"`
	TotalTransactionsToday int64                     `json:"totalTransactionsToday"`
	TotalRefundValueToday  decimal.Decimal           `json:"totalRefundValueToday"`
	MostPopularItem        *repository.PopularItem   `json:"mostPopularItem"`
	TotalInventoryValue    decimal.Decimal           `json:"totalInventoryValue"`
	LowStockItems          []repository.LowStockItem `json:"lowStockItems"`
	CategoryCount          int64                     `json:"categoryCount"`
}

// DashboardService is read-only aggregation over the ledger and product
// table. It takes no locks; point-in-time consistency is acceptable here.
type DashboardService interface {
	GetMetrics() (*DashboardMetrics, error)
}

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	categoryRepo  repository.CategoryRepository
}

func NewDashboardService(dRepo repository.DashboardRepository, cRepo repository.CategoryRepository) DashboardService {
	return &dashboardService{dashboardRepo: dRepo, categoryRepo: cRepo}
}

// GetMetrics computes the dashboard aggregates anchored at local midnight.
func (s *dashboardService) GetMetrics() (*DashboardMetrics, error) {
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	revenue, err := s.dashboardRepo.MovementValueSince(model.MovementSale, startOfToday)
	if err != nil {
		return nil, err
	}

	transactions, err := s.dashboardRepo.MovementCountSince(model.MovementSale, startOfToday)
	if err != nil {
		return nil, err
	}

	refunds, err := s.dashboardRepo.MovementValueSince(model.MovementRefund, startOfToday)
	if err != nil {
		return nil, err
	}

	mostPopular, err := s.dashboardRepo.MostPopularSince(startOfToday)
	if err != nil {
		return nil, err
	}

	inventoryValue, err := s.dashboardRepo.TotalInventoryValue()
	if err != nil {
		return nil, err
	}

	lowStock, err := s.dashboardRepo.LowStock(SafetyStockLevel, lowStockLimit)
	if err != nil {
		return nil, err
	}

	categoryCount, err := s.categoryRepo.Count()
	if err != nil {
		return nil, err
	}

	return &DashboardMetrics{
		TotalRevenueToday:      revenue,
		TotalTransactionsToday: transactions,
		TotalRefundValueToday:  refunds,
		MostPopularItem:        mostPopular,
		TotalInventoryValue:    inventoryValue,
		LowStockItems:          lowStock,
		CategoryCount:          categoryCount,
	}, nil
}
