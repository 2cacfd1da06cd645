package health

import (
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

var startedAt = time.Now()

func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	cacheStatus := "up"
	if err := hrm.cacheService.Health(); err != nil {
		cacheStatus = "down"
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"status": "ok",
			"uptime": time.Since(startedAt).String(),
			"cache":  cacheStatus,
		}),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	if err := hrm.db.Health(); err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Database health check failed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	stats := hrm.db.GetStats()
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"status":           "ok",
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
		}),
		gecho.Send(),
	)
}
