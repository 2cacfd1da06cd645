package settings

import (
	"lahmah_server/handling"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
)

type appStatusPayload struct {
	IsAppActive *bool `json:"is_app_active" validate:"required"`
}

// GetSettings handles GET /settings. A store that has never been
// configured returns a null payload, not an error.
func (srm *SettingsRoutesManager) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := srm.settingsService.GetSettings(r.Context())
	if err != nil {
		srm.logger.Error("Failed to fetch settings", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch settings")
		return
	}

	gecho.Success(w,
		gecho.WithData(settings),
		gecho.Send(),
	)
}

// UpdateSettings handles PUT /settings, creating the singleton on first use
func (srm *SettingsRoutesManager) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	incoming, err := lib.ExtractAndValidateBody[tables.AppSettings](r)
	if err != nil {
		srm.logger.Warn("Invalid settings payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid settings payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	saved, err := srm.settingsService.UpdateSettings(r.Context(), incoming)
	if err != nil {
		srm.logger.Error("Failed to save settings", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to save settings")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Settings saved"),
		gecho.WithData(saved),
		gecho.Send(),
	)
}

// UpdateAppStatus handles PATCH /settings/app-status. It only flips the
// flag and requires the settings row to already exist.
func (srm *SettingsRoutesManager) UpdateAppStatus(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[appStatusPayload](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("is_app_active is required"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	saved, err := srm.settingsService.SetAppActive(r.Context(), *body.IsAppActive)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("App settings have not been configured yet"), gecho.Send())
			return
		}

		srm.logger.Error("Failed to update app status", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to update app status")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("App status updated"),
		gecho.WithData(saved),
		gecho.Send(),
	)
}
