package cutting

import (
	"lahmah_server/handling"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type cuttingMethodPayload struct {
	NameAr string `json:"name_ar" validate:"required"`
}

func parseMethodID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// ListCuttingMethods handles GET /cutting-methods
func (crm *CuttingRoutesManager) ListCuttingMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := crm.cuttingService.GetCuttingMethods(r.Context())
	if err != nil {
		crm.logger.Error("Failed to fetch cutting methods", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch cutting methods")
		return
	}

	gecho.Success(w,
		gecho.WithData(methods),
		gecho.Send(),
	)
}

// GetCuttingMethod handles GET /cutting-methods/{id}
func (crm *CuttingRoutesManager) GetCuttingMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := parseMethodID(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("Invalid cutting method ID"), gecho.Send())
		return
	}

	method, err := crm.cuttingService.GetCuttingMethodByID(r.Context(), id)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Cutting method not found"), gecho.Send())
			return
		}

		crm.logger.Error("Failed to fetch cutting method", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch cutting method")
		return
	}

	gecho.Success(w,
		gecho.WithData(method),
		gecho.Send(),
	)
}

// CreateCuttingMethod handles POST /cutting-methods
func (crm *CuttingRoutesManager) CreateCuttingMethod(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[cuttingMethodPayload](r)
	if err != nil {
		crm.logger.Warn("Invalid cutting method payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid cutting method payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	created, err := crm.cuttingService.CreateCuttingMethod(r.Context(), &tables.CuttingMethod{NameAr: body.NameAr})
	if err != nil {
		crm.logger.Error("Failed to create cutting method", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to create cutting method")
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Cutting method created"),
		gecho.WithData(created),
		gecho.Send(),
	)
}

// UpdateCuttingMethod handles PUT /cutting-methods/{id}
func (crm *CuttingRoutesManager) UpdateCuttingMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := parseMethodID(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("Invalid cutting method ID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[cuttingMethodPayload](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid cutting method payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	method, err := crm.cuttingService.UpdateCuttingMethod(r.Context(), id, body.NameAr)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Cutting method not found"), gecho.Send())
			return
		}

		crm.logger.Error("Failed to update cutting method", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to update cutting method")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cutting method updated"),
		gecho.WithData(method),
		gecho.Send(),
	)
}

// DeleteCuttingMethod handles DELETE /cutting-methods/{id}
func (crm *CuttingRoutesManager) DeleteCuttingMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := parseMethodID(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("Invalid cutting method ID"), gecho.Send())
		return
	}

	if err := crm.cuttingService.DeleteCuttingMethod(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Cutting method not found"), gecho.Send())
			return
		}

		crm.logger.Error("Failed to delete cutting method", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to delete cutting method")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cutting method deleted"),
		gecho.Send(),
	)
}
