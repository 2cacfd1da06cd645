package customers

import (
	"lahmah_server/handling"
	"lahmah_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListCustomers handles GET /customers, newest first
func (crm *CustomerRoutesManager) ListCustomers(w http.ResponseWriter, r *http.Request) {
	profiles, err := crm.customerService.GetCustomers(r.Context())
	if err != nil {
		crm.logger.Error("Failed to fetch customers", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch customers")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"customers": profiles,
			"count":     len(profiles),
		}),
		gecho.Send(),
	)
}

// GetCustomer handles GET /customers/{id}
func (crm *CustomerRoutesManager) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid customer ID"), gecho.Send())
		return
	}

	profile, err := crm.customerService.GetCustomerByID(r.Context(), id)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Customer not found"), gecho.Send())
			return
		}

		crm.logger.Error("Failed to fetch customer", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch customer")
		return
	}

	gecho.Success(w,
		gecho.WithData(profile),
		gecho.Send(),
	)
}

// UpdateCustomer handles PUT /customers/{id} as a partial profile update
func (crm *CustomerRoutesManager) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid customer ID"), gecho.Send())
		return
	}

	fields, err := lib.ExtractBody[map[string]any](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid customer payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	profile, err := crm.customerService.UpdateCustomer(r.Context(), id, *fields)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Customer not found"), gecho.Send())
			return
		}
		if lib.IsConflict(err) {
			gecho.Conflict(w, gecho.WithMessage("This email is already in use"), gecho.Send())
			return
		}

		crm.logger.Error("Failed to update customer", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to update customer")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Customer updated"),
		gecho.WithData(profile),
		gecho.Send(),
	)
}

// DeleteCustomer handles DELETE /customers/{id}
func (crm *CustomerRoutesManager) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid customer ID"), gecho.Send())
		return
	}

	if err := crm.customerService.DeleteCustomer(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Customer not found"), gecho.Send())
			return
		}

		crm.logger.Error("Failed to delete customer", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to delete customer")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Customer deleted"),
		gecho.Send(),
	)
}
