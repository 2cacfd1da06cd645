package services

import (
	"context"
	"lahmah_server/database"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type OrderService struct {
	logger       *gecho.Logger
	db           *database.DB
	emailService *EmailService
	cacheService *CacheService
}

func NewOrderService(
	logger *gecho.Logger,
	db *database.DB,
	emailService *EmailService,
	cacheService *CacheService,
) *OrderService {
	return &OrderService{
		logger:       logger,
		db:           db,
		emailService: emailService,
		cacheService: cacheService,
	}
}

// OrderListOptions contains filtering options for order queries
type OrderListOptions struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// GetOrders lists orders newest first, optionally filtered by status, with
// the placing customer's profile attached. orders.user_id is not a declared
// foreign key, so profiles come from a dependent IN query rather than a join.
func (os *OrderService) GetOrders(ctx context.Context, opts *OrderListOptions) ([]tables.Order, error) {
	if opts == nil {
		opts = &OrderListOptions{}
	}

	query := database.Query[tables.Order](os.db).
		OrderBy("created_at", database.DESC)

	if opts.Status != "" {
		query = query.Where("status", opts.Status)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	orders, err := query.All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if len(orders) == 0 {
		return []tables.Order{}, nil
	}

	if err := os.attachProfiles(ctx, orders); err != nil {
		// Profiles are display enrichment; the order list itself is intact
		os.logger.Warn("Failed to attach profiles to orders", gecho.Field("error", err))
	}

	return orders, nil
}

// GetOrderByID expands an order with its line items (each carrying the
// product's bilingual name) and the placing profile. A missing order returns
// (nil, nil); only a faulted call is an error.
func (os *OrderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*tables.Order, error) {
	order, err := database.FindByID[tables.Order](os.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, nil
	}

	items, err := database.Query[tables.OrderItem](os.db).
		Where("order_id", id).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if err := os.attachProductNames(ctx, items); err != nil {
		os.logger.Warn("Failed to resolve product names for order items",
			gecho.Field("order_id", id), gecho.Field("error", err))
	}
	order.Items = items

	if order.UserId != nil {
		profile, err := database.FindByID[tables.Profile](os.db, ctx, *order.UserId)
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		if profile != nil {
			profile.PasswordHash = ""
		}
		order.Profile = profile
	}

	return order, nil
}

// GetAllOrderItems returns every order line with product names resolved,
// which is the reporting aggregator's input.
func (os *OrderService) GetAllOrderItems(ctx context.Context) ([]tables.OrderItem, error) {
	items, err := database.Query[tables.OrderItem](os.db).All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if err := os.attachProductNames(ctx, items); err != nil {
		os.logger.Warn("Failed to resolve product names for order items", gecho.Field("error", err))
	}

	return items, nil
}

// UpdateOrderStatus sets an order's status. Any status may follow any other;
// the admin UI uses this as a manual override, so no transition graph is
// enforced here.
func (os *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status tables.OrderStatus) (*tables.Order, error) {
	rows, err := database.Query[tables.Order](os.db).
		Where("id", id).
		UpdateReturning(ctx, map[string]any{"status": string(status)})
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if len(rows) == 0 {
		return nil, lib.ErrNotFound
	}

	order := &rows[0]
	os.cacheService.InvalidateReports()

	// Best-effort customer notification; a mail failure never fails the update
	go os.notifyStatusChange(order)

	return order, nil
}

// DeleteOrder removes an order row. Line items are left to the store's
// cascade rules.
func (os *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	affected, err := database.DeleteByID[tables.Order](os.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	os.cacheService.InvalidateReports()
	return nil
}

// SearchOrders matches the exact id when the query parses as a UUID,
// otherwise substring-matches phone, address and city. Capped at 20 rows,
// newest first, profiles attached.
func (os *OrderService) SearchOrders(ctx context.Context, term string) ([]tables.Order, error) {
	query := database.Query[tables.Order](os.db).
		OrderBy("created_at", database.DESC).
		Limit(20)

	if id, err := uuid.Parse(term); err == nil {
		query = query.Where("id", id)
	} else {
		pattern := "%" + term + "%"
		query = query.Or().
			WhereILike("phone", pattern).
			WhereILike("address", pattern).
			WhereILike("city", pattern).
			End()
	}

	orders, err := query.All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if len(orders) == 0 {
		return []tables.Order{}, nil
	}

	if err := os.attachProfiles(ctx, orders); err != nil {
		os.logger.Warn("Failed to attach profiles to search results", gecho.Field("error", err))
	}

	return orders, nil
}

// attachProfiles resolves the distinct user ids across the given orders with
// a single IN query and attaches the matching profiles in place.
func (os *OrderService) attachProfiles(ctx context.Context, orders []tables.Order) error {
	seen := make(map[uuid.UUID]bool)
	ids := make([]any, 0, len(orders))
	for _, order := range orders {
		if order.UserId != nil && !seen[*order.UserId] {
			seen[*order.UserId] = true
			ids = append(ids, *order.UserId)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	profiles, err := database.Query[tables.Profile](os.db).
		WhereIn("id", ids).
		All(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}

	byID := make(map[uuid.UUID]*tables.Profile, len(profiles))
	for i := range profiles {
		profiles[i].PasswordHash = ""
		byID[profiles[i].Id] = &profiles[i]
	}

	for i := range orders {
		if orders[i].UserId != nil {
			orders[i].Profile = byID[*orders[i].UserId]
		}
	}
	return nil
}

// attachProductNames resolves bilingual product names for the given items
// with a single IN query. Older rows never stored the name on the line, so
// the sidecar metadata wins when present.
func (os *OrderService) attachProductNames(ctx context.Context, items []tables.OrderItem) error {
	seen := make(map[uuid.UUID]bool)
	ids := make([]any, 0, len(items))
	for _, item := range items {
		if item.ProductId != uuid.Nil && !seen[item.ProductId] {
			seen[item.ProductId] = true
			ids = append(ids, item.ProductId)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	products, err := database.Query[tables.Product](os.db).
		WhereIn("id", ids).
		All(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}

	byID := make(map[uuid.UUID]*tables.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	for i := range items {
		if product := byID[items[i].ProductId]; product != nil {
			items[i].ProductNameAr = product.NameAr
			items[i].ProductNameEn = product.NameEn
		}
		if meta := items[i].Metadata; meta != nil && meta.ProductName != nil {
			items[i].ProductNameAr = *meta.ProductName
		}
	}
	return nil
}

func (os *OrderService) notifyStatusChange(order *tables.Order) {
	if order.UserId == nil {
		return
	}

	profile, err := database.FindByID[tables.Profile](os.db, context.Background(), *order.UserId)
	if err != nil || profile == nil || profile.Email == "" {
		return
	}

	if err := os.emailService.SendOrderStatusUpdate(profile.Email, order); err != nil {
		os.logger.Warn("Failed to send order status notification",
			gecho.Field("order_id", order.Id),
			gecho.Field("error", err),
		)
	}
}
