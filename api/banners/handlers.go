package banners

import (
	"lahmah_server/handling"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListBanners handles GET /banners, ordered by display_order. Pass
// ?active=true for the storefront subset.
func (brm *BannerRoutesManager) ListBanners(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	banners, err := brm.bannerService.GetBanners(r.Context(), activeOnly)
	if err != nil {
		brm.logger.Error("Failed to fetch banners", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch banners")
		return
	}

	gecho.Success(w,
		gecho.WithData(banners),
		gecho.Send(),
	)
}

// GetBanner handles GET /banners/{id}
func (brm *BannerRoutesManager) GetBanner(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid banner ID"), gecho.Send())
		return
	}

	banner, err := brm.bannerService.GetBannerByID(r.Context(), id)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Banner not found"), gecho.Send())
			return
		}

		brm.logger.Error("Failed to fetch banner", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch banner")
		return
	}

	gecho.Success(w,
		gecho.WithData(banner),
		gecho.Send(),
	)
}

// CreateBanner handles POST /banners
func (brm *BannerRoutesManager) CreateBanner(w http.ResponseWriter, r *http.Request) {
	banner, err := lib.ExtractAndValidateBody[tables.Banner](r)
	if err != nil {
		brm.logger.Warn("Invalid banner payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid banner payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	created, err := brm.bannerService.CreateBanner(r.Context(), banner)
	if err != nil {
		brm.logger.Error("Failed to create banner", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to create banner")
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Banner created"),
		gecho.WithData(created),
		gecho.Send(),
	)
}

// UpdateBanner handles PUT /banners/{id} as a partial update
func (brm *BannerRoutesManager) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid banner ID"), gecho.Send())
		return
	}

	fields, err := lib.ExtractBody[map[string]any](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid banner payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	banner, err := brm.bannerService.UpdateBanner(r.Context(), id, *fields)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Banner not found"), gecho.Send())
			return
		}

		brm.logger.Error("Failed to update banner", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to update banner")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Banner updated"),
		gecho.WithData(banner),
		gecho.Send(),
	)
}

// DeleteBanner handles DELETE /banners/{id}
func (brm *BannerRoutesManager) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid banner ID"), gecho.Send())
		return
	}

	if err := brm.bannerService.DeleteBanner(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Banner not found"), gecho.Send())
			return
		}

		brm.logger.Error("Failed to delete banner", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to delete banner")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Banner deleted"),
		gecho.Send(),
	)
}
