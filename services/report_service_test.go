package services

import (
	"testing"
	"time"

	"lahmah_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(amount float64, status tables.OrderStatus, createdAt time.Time) tables.Order {
	return tables.Order{
		Id:          uuid.New(),
		TotalAmount: amount,
		Status:      status,
		CreatedAt:   createdAt,
	}
}

func TestSalesSeries_SevenDaysOldestFirst(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	series := SalesSeries(nil, now)
	require.Len(t, series, 7)

	assert.Equal(t, "2025-03-04", series[0].Date)
	assert.Equal(t, "2025-03-10", series[6].Date)
	for _, point := range series {
		assert.Zero(t, point.Total)
		assert.Zero(t, point.Orders)
	}
}

func TestSalesSeries_SumsPerDayExcludingCancelled(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	day := func(offset int, hour int) time.Time {
		return time.Date(2025, 3, 10+offset, hour, 30, 0, 0, time.UTC)
	}

	orders := []tables.Order{
		makeOrder(100, tables.OrderStatusCompleted, day(0, 9)),
		makeOrder(50, tables.OrderStatusNew, day(0, 20)),
		makeOrder(75, tables.OrderStatusCancelled, day(0, 12)),   // excluded
		makeOrder(30, tables.OrderStatusProcessing, day(-2, 8)),  // two days ago
		makeOrder(999, tables.OrderStatusCompleted, day(-10, 8)), // outside the window
	}

	series := SalesSeries(orders, now)
	require.Len(t, series, 7)

	today := series[6]
	assert.Equal(t, "2025-03-10", today.Date)
	assert.Equal(t, 150.0, today.Total)
	assert.Equal(t, 2, today.Orders)

	twoDaysAgo := series[4]
	assert.Equal(t, "2025-03-08", twoDaysAgo.Date)
	assert.Equal(t, 30.0, twoDaysAgo.Total)
	assert.Equal(t, 1, twoDaysAgo.Orders)

	var windowTotal float64
	for _, point := range series {
		windowTotal += point.Total
	}
	assert.Equal(t, 180.0, windowTotal)
}

func TestTopProducts_RanksByQuantityCappedAtFive(t *testing.T) {
	ids := make([]uuid.UUID, 7)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var items []tables.OrderItem
	// product i sells i+1 units at 10 each
	for i, id := range ids {
		items = append(items, tables.OrderItem{
			ProductId: id,
			Quantity:  i + 1,
			Price:     10,
		})
	}

	top := TopProducts(items)
	require.Len(t, top, 5)

	assert.Equal(t, ids[6], top[0].ProductId)
	assert.Equal(t, 7, top[0].Quantity)
	assert.Equal(t, 70.0, top[0].Revenue)
	assert.Equal(t, ids[2], top[4].ProductId)
	assert.Equal(t, 3, top[4].Quantity)
}

func TestTopProducts_AccumulatesAcrossItems(t *testing.T) {
	id := uuid.New()
	other := uuid.New()

	items := []tables.OrderItem{
		{ProductId: id, Quantity: 2, Price: 25, ProductNameAr: "لحم غنم"},
		{ProductId: other, Quantity: 1, Price: 40},
		{ProductId: id, Quantity: 3, Price: 25},
	}

	top := TopProducts(items)
	require.Len(t, top, 2)

	assert.Equal(t, id, top[0].ProductId)
	assert.Equal(t, 5, top[0].Quantity)
	assert.Equal(t, 125.0, top[0].Revenue)
	assert.Equal(t, "لحم غنم", top[0].NameAr)
}

func TestTopProducts_StableOnTies(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	items := []tables.OrderItem{
		{ProductId: first, Quantity: 4, Price: 10},
		{ProductId: second, Quantity: 4, Price: 10},
	}

	top := TopProducts(items)
	require.Len(t, top, 2)

	// Equal quantities keep first-seen order
	assert.Equal(t, first, top[0].ProductId)
	assert.Equal(t, second, top[1].ProductId)
}

func TestStatusDistribution_CountsSumToInput(t *testing.T) {
	orders := []tables.Order{
		makeOrder(10, tables.OrderStatusNew, time.Now()),
		makeOrder(10, tables.OrderStatusNew, time.Now()),
		makeOrder(10, tables.OrderStatusCompleted, time.Now()),
		makeOrder(10, tables.OrderStatusCancelled, time.Now()),
	}

	distribution := StatusDistribution(orders)

	total := 0
	byStatus := make(map[tables.OrderStatus]int)
	for _, bucket := range distribution {
		total += bucket.Count
		byStatus[bucket.Status] = bucket.Count
	}

	assert.Equal(t, len(orders), total)
	assert.Equal(t, 2, byStatus[tables.OrderStatusNew])
	assert.Equal(t, 1, byStatus[tables.OrderStatusCompleted])
	assert.Equal(t, 0, byStatus[tables.OrderStatusShipping])
}

func TestStatusDistribution_UnknownStatusCounted(t *testing.T) {
	orders := []tables.Order{
		makeOrder(10, tables.OrderStatus("مرفوض"), time.Now()),
	}

	distribution := StatusDistribution(orders)

	total := 0
	found := false
	for _, bucket := range distribution {
		total += bucket.Count
		if bucket.Status == tables.OrderStatus("مرفوض") {
			found = true
			assert.Equal(t, 1, bucket.Count)
		}
	}
	assert.True(t, found)
	assert.Equal(t, 1, total)
}

func TestSummarize_RevenueOverCompletedOnly(t *testing.T) {
	orders := []tables.Order{
		makeOrder(100, tables.OrderStatusCompleted, time.Now()),
		makeOrder(200, tables.OrderStatusCompleted, time.Now()),
		makeOrder(50, tables.OrderStatusNew, time.Now()),
		makeOrder(70, tables.OrderStatusCancelled, time.Now()),
	}

	summary := Summarize(orders)

	assert.Equal(t, 300.0, summary.TotalRevenue)
	assert.Equal(t, 4, summary.TotalOrders)
	assert.Equal(t, 2, summary.CompletedOrders)
	assert.Equal(t, 1, summary.CancelledOrders)
	assert.Equal(t, 150.0, summary.AverageOrderValue)
	assert.Equal(t, 0.5, summary.CompletionRate)
}

func TestSummarize_EmptyInputYieldsZeros(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.AverageOrderValue)
	assert.Zero(t, summary.CompletionRate)
}

func TestSummarize_NoCompletedOrdersGuardsDivision(t *testing.T) {
	orders := []tables.Order{
		makeOrder(50, tables.OrderStatusNew, time.Now()),
		makeOrder(60, tables.OrderStatusShipping, time.Now()),
	}

	summary := Summarize(orders)

	assert.Zero(t, summary.TotalRevenue)
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Zero(t, summary.AverageOrderValue)
	assert.Zero(t, summary.CompletionRate)
}
