package settings

import (
	"lahmah_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SettingsRoutesManager struct {
	logger          *gecho.Logger
	settingsService *services.SettingsService
}

func NewSettingsRoutesManager(
	logger *gecho.Logger,
	settingsService *services.SettingsService,
) *SettingsRoutesManager {
	return &SettingsRoutesManager{
		logger:          logger,
		settingsService: settingsService,
	}
}

func (srm *SettingsRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", srm.GetSettings)
		r.Put("/", srm.UpdateSettings)
		r.Patch("/app-status", srm.UpdateAppStatus)
	})
}
