package health

import (
	"lahmah_server/database"
	"lahmah_server/services"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthRoutesManager struct {
	db           *database.DB
	cacheService *services.CacheService
}

func NewHealthRoutesManager(db *database.DB, cacheService *services.CacheService) *HealthRoutesManager {
	return &HealthRoutesManager{
		db:           db,
		cacheService: cacheService,
	}
}

func (hrm *HealthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/health", hrm.GetServerHealth)
	r.Get("/health/database", hrm.GetDatabaseHealth)

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	// Register Prometheus metrics
	prometheus.MustRegister(HttpDuration, HttpRequests)
}
