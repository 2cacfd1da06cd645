package products

import (
	"lahmah_server/handling"
	"lahmah_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type cuttingMethodLinks struct {
	MethodIDs []int `json:"method_ids"`
}

// GetCuttingMethods handles GET /products/{id}/cutting-methods
func (prm *ProductRoutesManager) GetCuttingMethods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID"), gecho.Send())
		return
	}

	methodIDs, err := prm.productService.GetCuttingMethodIDs(ctx, id)
	if err != nil {
		prm.logger.Error("Failed to fetch cutting methods", gecho.Field("product_id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch cutting methods")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"method_ids": methodIDs}),
		gecho.Send(),
	)
}

// SetCuttingMethods handles PUT /products/{id}/cutting-methods, replacing
// the product's set of links with the given one.
func (prm *ProductRoutesManager) SetCuttingMethods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID"), gecho.Send())
		return
	}

	body, err := lib.ExtractBody[cuttingMethodLinks](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid cutting method payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	if err := prm.productService.SetCuttingMethods(ctx, id, body.MethodIDs); err != nil {
		prm.logger.Error("Failed to update cutting methods", gecho.Field("product_id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to update cutting methods")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cutting methods updated"),
		gecho.WithData(map[string]any{"method_ids": body.MethodIDs}),
		gecho.Send(),
	)
}
