package categories

import (
	"lahmah_server/handling"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// ListCategories handles GET /categories, ordered by position
func (crm *CategoryRoutesManager) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := crm.categoryService.GetCategories(r.Context())
	if err != nil {
		crm.logger.Error("Failed to fetch categories", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch categories")
		return
	}

	gecho.Success(w,
		gecho.WithData(categories),
		gecho.Send(),
	)
}

// ListCategoriesWithCounts handles GET /categories/counts, each category
// carrying its product count.
func (crm *CategoryRoutesManager) ListCategoriesWithCounts(w http.ResponseWriter, r *http.Request) {
	categories, err := crm.categoryService.GetCategoriesWithProductCounts(r.Context())
	if err != nil {
		crm.logger.Error("Failed to fetch category counts", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch category counts")
		return
	}

	gecho.Success(w,
		gecho.WithData(categories),
		gecho.Send(),
	)
}

// GetCategory handles GET /categories/{id}
func (crm *CategoryRoutesManager) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w, gecho.WithMessage("Category ID is required"), gecho.Send())
		return
	}

	category, err := crm.categoryService.GetCategoryByID(r.Context(), id)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
			return
		}

		crm.logger.Error("Failed to fetch category", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch category")
		return
	}

	gecho.Success(w,
		gecho.WithData(category),
		gecho.Send(),
	)
}

// CreateCategory handles POST /categories. The given ID is slugified, so
// "Sheep Meat" becomes the key "sheep_meat".
func (crm *CategoryRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	category, err := lib.ExtractAndValidateBody[tables.Category](r)
	if err != nil {
		crm.logger.Warn("Invalid category payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid category payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	created, err := crm.categoryService.CreateCategory(r.Context(), category)
	if err != nil {
		if lib.IsConflict(err) {
			gecho.Conflict(w, gecho.WithMessage("A category with this ID already exists"), gecho.Send())
			return
		}

		crm.logger.Error("Failed to create category", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to create category")
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Category created"),
		gecho.WithData(created),
		gecho.Send(),
	)
}

// UpdateCategory handles PUT /categories/{id} as a partial update
func (crm *CategoryRoutesManager) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w, gecho.WithMessage("Category ID is required"), gecho.Send())
		return
	}

	fields, err := lib.ExtractBody[map[string]any](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid category payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	updated, err := crm.categoryService.UpdateCategory(r.Context(), id, *fields)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
			return
		}

		crm.logger.Error("Failed to update category", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to update category")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category updated"),
		gecho.WithData(updated),
		gecho.Send(),
	)
}

// DeleteCategory handles DELETE /categories/{id}
func (crm *CategoryRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w, gecho.WithMessage("Category ID is required"), gecho.Send())
		return
	}

	if err := crm.categoryService.DeleteCategory(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
			return
		}

		crm.logger.Error("Failed to delete category", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to delete category")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category deleted"),
		gecho.Send(),
	)
}
