package repository

import (
	"fmt"
	"time"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error)
	GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error)
	GetStockStats(lowStockThreshold int64) (DashboardStockStatsRow, error)
	GetTopBooks(startAt, endAt time.Time, limit int) ([]DashboardBookRankingRow, error)
}

// DashboardOverviewRow 仪表盘总览原始统计结果
type DashboardOverviewRow struct {
	OrdersTotal     int64
	ApprovedOrders  int64
	DeliveredOrders int64
	RejectedOrders  int64
	CanceledOrders  int64
	GMVApproved     float64
	NewCustomers    int64
	ActiveBooks     int64
	OpenPostSales   int64
}

// DashboardOrderTrendRow 订单趋势统计
type DashboardOrderTrendRow struct {
	Day            string
	OrdersTotal    int64
	OrdersApproved int64
}

// DashboardStockStatsRow 库存统计
type DashboardStockStatsRow struct {
	AvailableUnits int64
	ReservedUnits  int64
	SoldUnits      int64
	BlockedUnits   int64
	LowStockBooks  int64
}

// DashboardBookRankingRow 图书销量排行原始行
type DashboardBookRankingRow struct {
	BookID    uint
	Title     string
	SoldUnits int64
}

// GormDashboardRepository GORM 仪表盘聚合实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// settledOrderStatuses 支付确认后的订单状态集合
func settledOrderStatuses() []string {
	return []string{
		constants.OrderStatusApproved,
		constants.OrderStatusShipping,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
	}
}

// GetOverview 获取总览统计
func (r *GormDashboardRepository) GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	orderBase := func() *gorm.DB {
		return r.db.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ?", startAt, endAt)
	}

	if err := orderBase().Count(&result.OrdersTotal).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status IN ?", settledOrderStatuses()).Count(&result.ApprovedOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusDelivered).Count(&result.DeliveredOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusRejected).Count(&result.RejectedOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusCanceled).Count(&result.CanceledOrders).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.Transaction{}).
		Joins("JOIN orders ON orders.id = transactions.order_id").
		Where("orders.approved_at IS NOT NULL AND orders.approved_at >= ? AND orders.approved_at < ? AND orders.status IN ?",
			startAt, endAt, settledOrderStatuses()).
		Select("COALESCE(SUM(transactions.amount), 0)").
		Scan(&result.GMVApproved).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.Customer{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Count(&result.NewCustomers).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.Book{}).
		Where("status = ?", constants.BookStatusActive).
		Count(&result.ActiveBooks).Error; err != nil {
		return result, err
	}

	openStatuses := []string{
		constants.PostSaleStatusExchangeRequested,
		constants.PostSaleStatusExchangeAccepted,
		constants.PostSaleStatusReturnRequested,
	}
	if err := r.db.Model(&models.ReturnExchangeRequest{}).
		Where("status IN ?", openStatuses).
		Count(&result.OpenPostSales).Error; err != nil {
		return result, err
	}

	return result, nil
}

// GetOrderTrends 获取订单趋势
func (r *GormDashboardRepository) GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error) {
	type totalRow struct {
		Day   string
		Total int64
	}
	type approvedRow struct {
		Day      string
		Approved int64
	}

	var totals []totalRow
	dayExpr := "CAST(date(created_at) AS TEXT)"
	if err := r.db.Model(&models.Order{}).
		Select(fmt.Sprintf("%s as day, COUNT(*) as total", dayExpr)).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Group(dayExpr).
		Order("day asc").
		Scan(&totals).Error; err != nil {
		return nil, err
	}

	var approveds []approvedRow
	if err := r.db.Model(&models.Order{}).
		Select(fmt.Sprintf("%s as day, COUNT(*) as approved", dayExpr)).
		Where("created_at >= ? AND created_at < ? AND status IN ?", startAt, endAt, settledOrderStatuses()).
		Group(dayExpr).
		Order("day asc").
		Scan(&approveds).Error; err != nil {
		return nil, err
	}

	approvedMap := make(map[string]int64, len(approveds))
	for _, item := range approveds {
		approvedMap[item.Day] = item.Approved
	}

	result := make([]DashboardOrderTrendRow, 0, len(totals))
	for _, item := range totals {
		result = append(result, DashboardOrderTrendRow{
			Day:            item.Day,
			OrdersTotal:    item.Total,
			OrdersApproved: approvedMap[item.Day],
		})
	}
	return result, nil
}

// GetStockStats 获取库存总览统计
func (r *GormDashboardRepository) GetStockStats(lowStockThreshold int64) (DashboardStockStatsRow, error) {
	result := DashboardStockStatsRow{}

	countByStatus := func(status string, dest *int64) error {
		return r.db.Model(&models.InventoryUnit{}).
			Where("status = ?", status).
			Count(dest).Error
	}
	if err := countByStatus(constants.InventoryStatusAvailable, &result.AvailableUnits); err != nil {
		return result, err
	}
	if err := countByStatus(constants.InventoryStatusReserved, &result.ReservedUnits); err != nil {
		return result, err
	}
	if err := countByStatus(constants.InventoryStatusSold, &result.SoldUnits); err != nil {
		return result, err
	}
	if err := countByStatus(constants.InventoryStatusBlocked, &result.BlockedUnits); err != nil {
		return result, err
	}

	if lowStockThreshold < 0 {
		lowStockThreshold = 0
	}
	if err := r.db.Model(&models.Book{}).
		Where("status = ?", constants.BookStatusActive).
		Where(fmt.Sprintf(
			"(SELECT COUNT(*) FROM inventory_units WHERE inventory_units.book_id = books.id AND inventory_units.status = '%s' AND inventory_units.deleted_at IS NULL) <= ?",
			constants.InventoryStatusAvailable), lowStockThreshold).
		Count(&result.LowStockBooks).Error; err != nil {
		return result, err
	}

	return result, nil
}

// GetTopBooks 获取图书销量排行
func (r *GormDashboardRepository) GetTopBooks(startAt, endAt time.Time, limit int) ([]DashboardBookRankingRow, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []DashboardBookRankingRow
	if err := r.db.Model(&models.InventoryUnit{}).
		Select("inventory_units.book_id as book_id, books.title as title, COUNT(*) as sold_units").
		Joins("JOIN books ON books.id = inventory_units.book_id").
		Where("inventory_units.status = ? AND inventory_units.sale_date >= ? AND inventory_units.sale_date < ?",
			constants.InventoryStatusSold, startAt, endAt).
		Group("inventory_units.book_id, books.title").
		Order("sold_units desc").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
