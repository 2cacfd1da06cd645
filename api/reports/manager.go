package reports

import (
	"lahmah_server/handling"
	"lahmah_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ReportRoutesManager struct {
	logger        *gecho.Logger
	reportService *services.ReportService
}

func NewReportRoutesManager(
	logger *gecho.Logger,
	reportService *services.ReportService,
) *ReportRoutesManager {
	return &ReportRoutesManager{
		logger:        logger,
		reportService: reportService,
	}
}

func (rrm *ReportRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/reports", rrm.GetReport)
	r.Get("/dashboard", rrm.GetDashboard)
}

// GetReport handles GET /reports: sales series, top products, status
// distribution and KPI summary in one payload.
func (rrm *ReportRoutesManager) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := rrm.reportService.GetReport(r.Context())
	if err != nil {
		rrm.logger.Error("Failed to build report", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to build report")
		return
	}

	gecho.Success(w,
		gecho.WithData(report),
		gecho.Send(),
	)
}

// GetDashboard handles GET /dashboard
func (rrm *ReportRoutesManager) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := rrm.reportService.GetDashboardStats(r.Context())
	if err != nil {
		rrm.logger.Error("Failed to build dashboard stats", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to build dashboard stats")
		return
	}

	gecho.Success(w,
		gecho.WithData(stats),
		gecho.Send(),
	)
}
