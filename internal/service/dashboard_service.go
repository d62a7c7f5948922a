package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/livraria-next/internal/cache"
	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"
)

const (
	dashboardCacheTTL      = 45 * time.Second
	dashboardCustomMaxDays = 90
	dashboardRangeToday    = "today"
	dashboardRange7Days    = "7d"
	dashboardRange30Days   = "30d"
	dashboardRangeCustom   = "custom"
)

// DashboardService 后台仪表盘服务，聚合经营数据
type DashboardService struct {
	repo              repository.DashboardRepository
	lowStockThreshold int64
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo, lowStockThreshold: 3}
}

// DashboardQueryInput 仪表盘查询输入
type DashboardQueryInput struct {
	Range        string
	From         *time.Time
	To           *time.Time
	ForceRefresh bool
}

// DashboardOverviewResponse 仪表盘总览响应
type DashboardOverviewResponse struct {
	Range  string              `json:"range"`
	From   string              `json:"from"`
	To     string              `json:"to"`
	KPI    DashboardKPI        `json:"kpi"`
	Trends []DashboardTrendDay `json:"trends"`
	Stock  DashboardStock      `json:"stock"`
	Top    []DashboardTopBook  `json:"top_books"`
}

// DashboardKPI 仪表盘核心指标
type DashboardKPI struct {
	OrdersTotal     int64  `json:"orders_total"`
	ApprovedOrders  int64  `json:"approved_orders"`
	DeliveredOrders int64  `json:"delivered_orders"`
	RejectedOrders  int64  `json:"rejected_orders"`
	CanceledOrders  int64  `json:"canceled_orders"`
	GMVApproved     string `json:"gmv_approved"`
	ApprovalRate    string `json:"approval_rate"`
	NewCustomers    int64  `json:"new_customers"`
	ActiveBooks     int64  `json:"active_books"`
	OpenPostSales   int64  `json:"open_post_sales"`
}

// DashboardTrendDay 单日订单趋势
type DashboardTrendDay struct {
	Day            string `json:"day"`
	OrdersTotal    int64  `json:"orders_total"`
	OrdersApproved int64  `json:"orders_approved"`
}

// DashboardStock 库存总览
type DashboardStock struct {
	AvailableUnits int64 `json:"available_units"`
	ReservedUnits  int64 `json:"reserved_units"`
	SoldUnits      int64 `json:"sold_units"`
	BlockedUnits   int64 `json:"blocked_units"`
	LowStockBooks  int64 `json:"low_stock_books"`
}

// DashboardTopBook 图书销量排行项
type DashboardTopBook struct {
	BookID    uint   `json:"book_id"`
	Title     string `json:"title"`
	SoldUnits int64  `json:"sold_units"`
}

// GetOverview 获取仪表盘总览，结果短期缓存
func (s *DashboardService) GetOverview(input DashboardQueryInput) (*DashboardOverviewResponse, error) {
	rangeKey, startAt, endAt, err := resolveDashboardRange(input)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:overview:%s:%d:%d", rangeKey, startAt.Unix(), endAt.Unix())
	if !input.ForceRefresh {
		var cached DashboardOverviewResponse
		if ok, err := cache.GetJSON(context.Background(), cacheKey, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	overview, err := s.repo.GetOverview(startAt, endAt)
	if err != nil {
		return nil, err
	}
	trends, err := s.repo.GetOrderTrends(startAt, endAt)
	if err != nil {
		return nil, err
	}
	stock, err := s.repo.GetStockStats(s.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	topRows, err := s.repo.GetTopBooks(startAt, endAt, 10)
	if err != nil {
		return nil, err
	}

	approvalRate := "0.00"
	if overview.OrdersTotal > 0 {
		approvalRate = fmt.Sprintf("%.2f", float64(overview.ApprovedOrders)/float64(overview.OrdersTotal)*100)
	}

	resp := &DashboardOverviewResponse{
		Range: rangeKey,
		From:  startAt.Format(time.RFC3339),
		To:    endAt.Format(time.RFC3339),
		KPI: DashboardKPI{
			OrdersTotal:     overview.OrdersTotal,
			ApprovedOrders:  overview.ApprovedOrders,
			DeliveredOrders: overview.DeliveredOrders,
			RejectedOrders:  overview.RejectedOrders,
			CanceledOrders:  overview.CanceledOrders,
			GMVApproved:     models.NewMoneyFromFloat(overview.GMVApproved).String(),
			ApprovalRate:    approvalRate,
			NewCustomers:    overview.NewCustomers,
			ActiveBooks:     overview.ActiveBooks,
			OpenPostSales:   overview.OpenPostSales,
		},
		Trends: make([]DashboardTrendDay, 0, len(trends)),
		Stock: DashboardStock{
			AvailableUnits: stock.AvailableUnits,
			ReservedUnits:  stock.ReservedUnits,
			SoldUnits:      stock.SoldUnits,
			BlockedUnits:   stock.BlockedUnits,
			LowStockBooks:  stock.LowStockBooks,
		},
		Top: make([]DashboardTopBook, 0, len(topRows)),
	}
	for _, item := range trends {
		resp.Trends = append(resp.Trends, DashboardTrendDay{
			Day:            item.Day,
			OrdersTotal:    item.OrdersTotal,
			OrdersApproved: item.OrdersApproved,
		})
	}
	for _, item := range topRows {
		resp.Top = append(resp.Top, DashboardTopBook{
			BookID:    item.BookID,
			Title:     item.Title,
			SoldUnits: item.SoldUnits,
		})
	}

	_ = cache.SetJSON(context.Background(), cacheKey, resp, dashboardCacheTTL)
	return resp, nil
}

// resolveDashboardRange 解析查询时间范围
func resolveDashboardRange(input DashboardQueryInput) (string, time.Time, time.Time, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	rangeKey := strings.ToLower(strings.TrimSpace(input.Range))
	switch rangeKey {
	case "", dashboardRangeToday:
		return dashboardRangeToday, today, today.AddDate(0, 0, 1), nil
	case dashboardRange7Days:
		return dashboardRange7Days, today.AddDate(0, 0, -6), today.AddDate(0, 0, 1), nil
	case dashboardRange30Days:
		return dashboardRange30Days, today.AddDate(0, 0, -29), today.AddDate(0, 0, 1), nil
	case dashboardRangeCustom:
		if input.From == nil || input.To == nil || !input.To.After(*input.From) {
			return "", time.Time{}, time.Time{}, ErrNotFound
		}
		if input.To.Sub(*input.From) > dashboardCustomMaxDays*24*time.Hour {
			return "", time.Time{}, time.Time{}, ErrNotFound
		}
		return dashboardRangeCustom, *input.From, *input.To, nil
	default:
		return "", time.Time{}, time.Time{}, ErrNotFound
	}
}
