package products

import (
	"lahmah_server/handling"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateProduct handles POST /products
func (prm *ProductRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	product, err := lib.ExtractAndValidateBody[tables.Product](r)
	if err != nil {
		prm.logger.Warn("Invalid product payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	created, err := prm.productService.CreateProduct(ctx, product)
	if err != nil {
		if lib.IsConflict(err) {
			gecho.Conflict(w,
				gecho.WithMessage("A product with this ID already exists"),
				gecho.Send(),
			)
			return
		}

		prm.logger.Error("Failed to create product", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to create product")
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(created),
		gecho.Send(),
	)
}

// UpdateProduct handles PUT /products/{id} as a partial update
func (prm *ProductRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID"), gecho.Send())
		return
	}

	fields, err := lib.ExtractBody[map[string]any](r)
	if err != nil {
		prm.logger.Warn("Invalid product payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	updated, err := prm.productService.UpdateProduct(ctx, id, *fields)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}

		prm.logger.Error("Failed to update product", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to update product")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(updated),
		gecho.Send(),
	)
}

// DeleteProduct handles DELETE /products/{id}
func (prm *ProductRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID"), gecho.Send())
		return
	}

	if err := prm.productService.DeleteProduct(ctx, id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}

		prm.logger.Error("Failed to delete product", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to delete product")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}
