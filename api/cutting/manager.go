package cutting

import (
	"lahmah_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CuttingRoutesManager struct {
	logger         *gecho.Logger
	cuttingService *services.CuttingService
}

func NewCuttingRoutesManager(
	logger *gecho.Logger,
	cuttingService *services.CuttingService,
) *CuttingRoutesManager {
	return &CuttingRoutesManager{
		logger:         logger,
		cuttingService: cuttingService,
	}
}

func (crm *CuttingRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/cutting-methods", func(r chi.Router) {
		r.Get("/", crm.ListCuttingMethods)
		r.Post("/", crm.CreateCuttingMethod)
		r.Get("/{id}", crm.GetCuttingMethod)
		r.Put("/{id}", crm.UpdateCuttingMethod)
		r.Delete("/{id}", crm.DeleteCuttingMethod)
	})
}
