package services

import (
	"context"
	"lahmah_server/database"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type CategoryService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCategoryService(logger *gecho.Logger, db *database.DB) *CategoryService {
	return &CategoryService{
		logger: logger,
		db:     db,
	}
}

// GetCategories lists every category in display order. Position is a sort key
// only; duplicates are allowed and preserved.
func (cs *CategoryService) GetCategories(ctx context.Context) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).
		OrderBy("position", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return categories, nil
}

// GetCategoryByID fetches a single category; absent yields lib.ErrNotFound
func (cs *CategoryService) GetCategoryByID(ctx context.Context, id string) (*tables.Category, error) {
	category, err := database.FindByID[tables.Category](cs.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if category == nil {
		return nil, lib.ErrNotFound
	}
	return category, nil
}

// CreateCategory persists a new category. The id is always slugified from
// whatever the admin typed ("Sheep Meat" becomes "sheep_meat"); a duplicate
// slug surfaces as lib.ErrConflict via the unique pk.
func (cs *CategoryService) CreateCategory(ctx context.Context, category *tables.Category) (*tables.Category, error) {
	category.ID = lib.Slugify(category.ID)

	created, err := database.Query[tables.Category](cs.db).Insert(ctx, category)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.logger.Debug("Category created", gecho.Field("id", created.ID))
	return created, nil
}

// UpdateCategory applies a partial update and returns the canonical row
func (cs *CategoryService) UpdateCategory(ctx context.Context, id string, fields map[string]any) (*tables.Category, error) {
	rows, err := database.Query[tables.Category](cs.db).
		Where("id", id).
		UpdateReturning(ctx, fields)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if len(rows) == 0 {
		return nil, lib.ErrNotFound
	}
	return &rows[0], nil
}

// DeleteCategory removes a category
func (cs *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	affected, err := database.DeleteByID[tables.Category](cs.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// GetCategoriesWithProductCounts returns every category with its dependent
// product count, produced by one aggregate query instead of N+1 counts.
func (cs *CategoryService) GetCategoriesWithProductCounts(ctx context.Context) ([]tables.CategoryWithCount, error) {
	rows, err := database.RawQuery[tables.CategoryWithCount](cs.db, ctx, `
		SELECT c.*, COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.position ASC
	`)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return rows, nil
}
