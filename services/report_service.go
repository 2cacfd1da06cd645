package services

import (
	"context"
	"sort"
	"time"

	"lahmah_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// SalesPoint is one day of the sales series
type SalesPoint struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Total  float64 `json:"total"`
	Orders int     `json:"orders"`
}

// TopProduct ranks a product by units sold across all orders
type TopProduct struct {
	ProductId uuid.UUID `json:"product_id"`
	NameAr    string    `json:"name_ar"`
	NameEn    string    `json:"name_en"`
	Quantity  int       `json:"quantity"`
	Revenue   float64   `json:"revenue"`
}

// StatusCount is one slice of the order status distribution
type StatusCount struct {
	Status tables.OrderStatus `json:"status"`
	Count  int                `json:"count"`
}

// ReportSummary holds the headline KPIs
type ReportSummary struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrders       int     `json:"total_orders"`
	CompletedOrders   int     `json:"completed_orders"`
	CancelledOrders   int     `json:"cancelled_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	CompletionRate    float64 `json:"completion_rate"`
}

// Report is the full reporting snapshot served to the dashboard
type Report struct {
	Summary            ReportSummary `json:"summary"`
	SalesSeries        []SalesPoint  `json:"sales_series"`
	TopProducts        []TopProduct  `json:"top_products"`
	StatusDistribution []StatusCount `json:"status_distribution"`
	GeneratedAt        time.Time     `json:"generated_at"`
}

// DashboardStats is the landing-page snapshot
type DashboardStats struct {
	TotalSales     float64        `json:"total_sales"`
	ActiveOrders   int            `json:"active_orders"`
	TotalProducts  int            `json:"total_products"`
	TotalCustomers int            `json:"total_customers"`
	LatestOrders   []tables.Order `json:"latest_orders"`
}

// SalesSeries folds orders into one entry per day for the last 7 days
// ending at now, oldest first. Cancelled orders never count; days without
// orders still appear with zero totals. Day boundaries follow now's
// location.
func SalesSeries(orders []tables.Order, now time.Time) []SalesPoint {
	const days = 7

	totals := make(map[string]*SalesPoint, days)
	series := make([]SalesPoint, 0, days)
	start := now.AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, SalesPoint{Date: date})
		totals[date] = &series[i]
	}

	for _, order := range orders {
		if order.Status == tables.OrderStatusCancelled {
			continue
		}
		date := order.CreatedAt.In(now.Location()).Format("2006-01-02")
		if point, ok := totals[date]; ok {
			point.Total += order.TotalAmount
			point.Orders++
		}
	}

	return series
}

// TopProducts ranks products by total units sold, descending, capped at 5.
// Ties keep the order products were first seen in, so repeated runs over
// the same input agree.
func TopProducts(items []tables.OrderItem) []TopProduct {
	const limit = 5

	byProduct := make(map[uuid.UUID]*TopProduct)
	ranking := make([]*TopProduct, 0)

	for i := range items {
		item := &items[i]
		entry, ok := byProduct[item.ProductId]
		if !ok {
			entry = &TopProduct{
				ProductId: item.ProductId,
				NameAr:    item.ProductNameAr,
				NameEn:    item.ProductNameEn,
			}
			byProduct[item.ProductId] = entry
			ranking = append(ranking, entry)
		}
		entry.Quantity += item.Quantity
		entry.Revenue += item.Price * float64(item.Quantity)
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Quantity > ranking[b].Quantity
	})

	top := make([]TopProduct, 0, limit)
	for _, entry := range ranking {
		if len(top) == limit {
			break
		}
		top = append(top, *entry)
	}
	return top
}

// StatusDistribution counts orders per status. Every known status appears
// even when its count is zero; unknown stored statuses are counted too,
// after the known ones.
func StatusDistribution(orders []tables.Order) []StatusCount {
	counts := make(map[tables.OrderStatus]int, len(tables.KnownStatuses))
	for _, order := range orders {
		counts[order.Status]++
	}

	distribution := make([]StatusCount, 0, len(tables.KnownStatuses))
	for _, status := range tables.KnownStatuses {
		distribution = append(distribution, StatusCount{Status: status, Count: counts[status]})
		delete(counts, status)
	}

	extras := make([]StatusCount, 0, len(counts))
	for status, count := range counts {
		extras = append(extras, StatusCount{Status: status, Count: count})
	}
	sort.Slice(extras, func(a, b int) bool { return extras[a].Status < extras[b].Status })

	return append(distribution, extras...)
}

// Summarize computes the headline KPIs. Revenue counts completed orders
// only; the average and the completion rate are zero rather than a division
// fault when nothing qualifies.
func Summarize(orders []tables.Order) ReportSummary {
	var summary ReportSummary

	for _, order := range orders {
		switch order.Status {
		case tables.OrderStatusCompleted:
			summary.TotalRevenue += order.TotalAmount
			summary.CompletedOrders++
		case tables.OrderStatusCancelled:
			summary.CancelledOrders++
		}
	}

	summary.TotalOrders = len(orders)
	if summary.CompletedOrders > 0 {
		summary.AverageOrderValue = summary.TotalRevenue / float64(summary.CompletedOrders)
	}
	if summary.TotalOrders > 0 {
		summary.CompletionRate = float64(summary.CompletedOrders) / float64(summary.TotalOrders)
	}
	return summary
}

type ReportService struct {
	logger          *gecho.Logger
	orderService    *OrderService
	productService  *ProductService
	customerService *CustomerService
	cacheService    *CacheService
}

func NewReportService(
	logger *gecho.Logger,
	orderService *OrderService,
	productService *ProductService,
	customerService *CustomerService,
	cacheService *CacheService,
) *ReportService {
	return &ReportService{
		logger:          logger,
		orderService:    orderService,
		productService:  productService,
		customerService: customerService,
		cacheService:    cacheService,
	}
}

// GetReport builds the reporting snapshot from all orders and line items,
// serving a cached copy when one is fresh.
func (rs *ReportService) GetReport(ctx context.Context) (*Report, error) {
	var cached Report
	if hit, err := rs.cacheService.GetJSON(reportCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	orders, err := rs.orderService.GetOrders(ctx, nil)
	if err != nil {
		return nil, err
	}
	items, err := rs.orderService.GetAllOrderItems(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Summary:            Summarize(orders),
		SalesSeries:        SalesSeries(orders, time.Now()),
		TopProducts:        TopProducts(items),
		StatusDistribution: StatusDistribution(orders),
		GeneratedAt:        time.Now(),
	}

	ttl := rs.cacheService.config.Cache.ReportTTL
	if err := rs.cacheService.SetJSON(reportCacheKey, report, ttl); err != nil {
		rs.logger.Warn("Failed to cache report snapshot", gecho.Field("error", err))
	}

	return report, nil
}

// GetDashboardStats builds the landing-page snapshot: completed sales,
// in-flight order count, catalogue and customer sizes, and the 5 newest
// orders.
func (rs *ReportService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if hit, err := rs.cacheService.GetJSON(dashboardCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	orders, err := rs.orderService.GetOrders(ctx, nil)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{LatestOrders: []tables.Order{}}
	active := make(map[tables.OrderStatus]bool, len(tables.ActiveStatuses))
	for _, status := range tables.ActiveStatuses {
		active[status] = true
	}
	for _, order := range orders {
		if order.Status == tables.OrderStatusCompleted {
			stats.TotalSales += order.TotalAmount
		}
		if active[order.Status] {
			stats.ActiveOrders++
		}
	}
	// GetOrders returns newest first
	for i := 0; i < len(orders) && i < 5; i++ {
		stats.LatestOrders = append(stats.LatestOrders, orders[i])
	}

	if stats.TotalProducts, err = rs.productService.CountProducts(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = rs.customerService.CountCustomers(ctx); err != nil {
		return nil, err
	}

	ttl := rs.cacheService.config.Cache.ReportTTL
	if err := rs.cacheService.SetJSON(dashboardCacheKey, stats, ttl); err != nil {
		rs.logger.Warn("Failed to cache dashboard snapshot", gecho.Field("error", err))
	}

	return stats, nil
}
