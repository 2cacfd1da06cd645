package banners

import (
	"lahmah_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type BannerRoutesManager struct {
	logger        *gecho.Logger
	bannerService *services.BannerService
}

func NewBannerRoutesManager(
	logger *gecho.Logger,
	bannerService *services.BannerService,
) *BannerRoutesManager {
	return &BannerRoutesManager{
		logger:        logger,
		bannerService: bannerService,
	}
}

func (brm *BannerRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/banners", func(r chi.Router) {
		r.Get("/", brm.ListBanners)
		r.Post("/", brm.CreateBanner)
		r.Get("/{id}", brm.GetBanner)
		r.Put("/{id}", brm.UpdateBanner)
		r.Delete("/{id}", brm.DeleteBanner)
	})
}
