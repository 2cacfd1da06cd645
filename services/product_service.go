package services

import (
	"context"
	"fmt"
	"lahmah_server/database"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ProductListOptions contains filtering and pagination options for product queries
type ProductListOptions struct {
	// Pagination
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	// Filters
	CategoryID string `json:"category_id,omitempty"` // Filter by category
	IsActive   *bool  `json:"is_active,omitempty"`   // Filter by active status
	SearchTerm string `json:"search_term,omitempty"` // Search in name_ar, name_en, description_ar

	// Sorting
	SortBy        string `json:"sort_by"`        // Field to sort by (created_at, price, name_ar)
	SortDirection string `json:"sort_direction"` // ASC or DESC
}

// ProductListResult wraps the product list response with metadata
type ProductListResult struct {
	Products   []tables.Product    `json:"products"`
	Pagination database.Pagination `json:"pagination"`
	Filters    ProductListOptions  `json:"filters"`
	QueryTime  time.Duration       `json:"query_time"`
}

var productSortColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"name_ar":    true,
	"stock":      true,
	"rating":     true,
}

// GetAllProducts retrieves products with filtering and pagination, with the
// category relation expanded on every row.
func (ps *ProductService) GetAllProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	ps.applyDefaultOptions(opts)

	query := database.Query[tables.Product](ps.db).Relation("Category")

	if opts.CategoryID != "" {
		query = query.Where("category_id", opts.CategoryID)
	}
	if opts.IsActive != nil {
		query = query.Where("is_active", *opts.IsActive)
	}
	if opts.SearchTerm != "" {
		pattern := "%" + opts.SearchTerm + "%"
		query = query.Or().
			WhereILike("name_ar", pattern).
			WhereILike("name_en", pattern).
			WhereILike("description_ar", pattern).
			End()
	}

	query = query.OrderBy(opts.SortBy, database.OrderDirection(opts.SortDirection))

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("duration", time.Since(startTime)))
		return nil, lib.MapPgError(err)
	}

	ps.logger.Debug("Products fetched successfully",
		gecho.Field("count", len(result.Data)),
		gecho.Field("total", result.Pagination.Total),
		gecho.Field("duration", time.Since(startTime)),
	)

	return &ProductListResult{
		Products:   result.Data,
		Pagination: result.Pagination,
		Filters:    *opts,
		QueryTime:  time.Since(startTime),
	}, nil
}

// GetProductByID retrieves a single product with its category expanded.
// A missing product yields lib.ErrNotFound.
func (ps *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	product, err := database.Query[tables.Product](ps.db).
		Relation("Category").
		Where("p.id", id).
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if product == nil {
		return nil, lib.ErrNotFound
	}

	return product, nil
}

// CreateProduct persists a new product and returns the canonical row
func (ps *ProductService) CreateProduct(ctx context.Context, product *tables.Product) (*tables.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	created, err := database.Query[tables.Product](ps.db).Insert(ctx, product)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ps.cacheService.InvalidateReports()
	return created, nil
}

// UpdateProduct applies a partial column update and returns the canonical row
func (ps *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, fields map[string]any) (*tables.Product, error) {
	rows, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		UpdateReturning(ctx, fields)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if len(rows) == 0 {
		return nil, lib.ErrNotFound
	}

	ps.cacheService.InvalidateReports()
	return &rows[0], nil
}

// DeleteProduct removes a product. Deleting an absent row is not an error at
// this layer; the handler surfaces the affected count.
func (ps *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	affected, err := database.DeleteByID[tables.Product](ps.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	ps.cacheService.InvalidateReports()
	return nil
}

// SearchProducts does a case-insensitive substring match over the bilingual
// name and description, capped at 20 rows in store-default order.
func (ps *ProductService) SearchProducts(ctx context.Context, term string) ([]tables.Product, error) {
	pattern := "%" + term + "%"

	products, err := database.Query[tables.Product](ps.db).
		Or().
		WhereILike("name_ar", pattern).
		WhereILike("name_en", pattern).
		WhereILike("description_ar", pattern).
		End().
		Limit(20).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return products, nil
}

// GetCuttingMethodIDs returns the ids of the cutting methods linked to a product
func (ps *ProductService) GetCuttingMethodIDs(ctx context.Context, productID uuid.UUID) ([]int, error) {
	links, err := database.Query[tables.ProductCuttingMethod](ps.db).
		Where("product_id", productID).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ids := make([]int, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.CuttingMethodID)
	}
	return ids, nil
}

// SetCuttingMethods replaces the product's cutting-method links with the given
// set. The delete and insert are sequential calls, not one transaction; a
// failure in between leaves the product temporarily without links.
func (ps *ProductService) SetCuttingMethods(ctx context.Context, productID uuid.UUID, methodIDs []int) error {
	if _, err := database.Query[tables.ProductCuttingMethod](ps.db).
		Where("product_id", productID).
		Delete(ctx); err != nil {
		return lib.MapPgError(err)
	}

	if len(methodIDs) == 0 {
		return nil
	}

	links := make([]tables.ProductCuttingMethod, 0, len(methodIDs))
	for _, methodID := range methodIDs {
		links = append(links, tables.ProductCuttingMethod{
			ProductID:       productID,
			CuttingMethodID: methodID,
		})
	}

	if _, err := database.Query[tables.ProductCuttingMethod](ps.db).InsertMany(ctx, links); err != nil {
		return fmt.Errorf("failed to link cutting methods: %w", lib.MapPgError(err))
	}

	return nil
}

// CountProducts returns the total product count for the dashboard
func (ps *ProductService) CountProducts(ctx context.Context) (int, error) {
	count, err := database.Query[tables.Product](ps.db).Count(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return count, nil
}

func (ps *ProductService) applyDefaultOptions(opts *ProductListOptions) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 20
	}
	if !productSortColumns[opts.SortBy] {
		opts.SortBy = "created_at"
	}
	if opts.SortDirection != "ASC" && opts.SortDirection != "DESC" {
		opts.SortDirection = "DESC"
	}
}
