package api

import (
	"lahmah_server/api/auth"
	"lahmah_server/api/banners"
	"lahmah_server/api/categories"
	"lahmah_server/api/customers"
	"lahmah_server/api/cutting"
	"lahmah_server/api/health"
	"lahmah_server/api/middleware"
	"lahmah_server/api/orders"
	"lahmah_server/api/products"
	"lahmah_server/api/reports"
	"lahmah_server/api/search"
	"lahmah_server/api/settings"
	"lahmah_server/api/uploads"
	"lahmah_server/database"
	"lahmah_server/services"
	"lahmah_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	mw             *middleware.Middleware
	authRoutes     *auth.AuthRoutesManager
	productRoutes  *products.ProductRoutesManager
	categoryRoutes *categories.CategoryRoutesManager
	orderRoutes    *orders.OrderRoutesManager
	customerRoutes *customers.CustomerRoutesManager
	bannerRoutes   *banners.BannerRoutesManager
	cuttingRoutes  *cutting.CuttingRoutesManager
	settingsRoutes *settings.SettingsRoutesManager
	reportRoutes   *reports.ReportRoutesManager
	searchRoutes   *search.SearchRoutesManager
	uploadRoutes   *uploads.UploadRoutesManager
	healthRoutes   *health.HealthRoutesManager
}

// NewRouterManager wires every service and handler group. Construction
// order follows the dependency chain: cache and email first, then the
// stores, then the aggregates built on top of them.
func NewRouterManager(logger *gecho.Logger, db *database.DB, cfg *structs.Config) *routerManager {
	cacheService := services.NewCacheService(logger, cfg)
	emailService := services.NewEmailService(logger, cfg)
	authService := services.NewAuthService(cfg, logger, db)
	productService := services.NewProductService(logger, db, cacheService)
	categoryService := services.NewCategoryService(logger, db)
	orderService := services.NewOrderService(logger, db, emailService, cacheService)
	customerService := services.NewCustomerService(logger, db)
	bannerService := services.NewBannerService(logger, db)
	cuttingService := services.NewCuttingService(logger, db)
	settingsService := services.NewSettingsService(logger, db, cacheService)
	reportService := services.NewReportService(logger, orderService, productService, customerService, cacheService)
	storageService := services.NewStorageService(logger, cfg)

	mw := middleware.NewMiddleware(cfg, logger, authService)

	return &routerManager{
		mw:             mw,
		authRoutes:     auth.NewAuthRoutesManager(logger, authService, cfg, mw),
		productRoutes:  products.NewProductRoutesManager(logger, productService),
		categoryRoutes: categories.NewCategoryRoutesManager(logger, categoryService),
		orderRoutes:    orders.NewOrderRoutesManager(logger, orderService),
		customerRoutes: customers.NewCustomerRoutesManager(logger, customerService),
		bannerRoutes:   banners.NewBannerRoutesManager(logger, bannerService),
		cuttingRoutes:  cutting.NewCuttingRoutesManager(logger, cuttingService),
		settingsRoutes: settings.NewSettingsRoutesManager(logger, settingsService),
		reportRoutes:   reports.NewReportRoutesManager(logger, reportService),
		searchRoutes:   search.NewSearchRoutesManager(logger, productService, orderService, customerService),
		uploadRoutes:   uploads.NewUploadRoutesManager(logger, storageService),
		healthRoutes:   health.NewHealthRoutesManager(db, cacheService),
	}
}

// RegisterRoutes mounts the public surface (auth, health, metrics) and
// puts everything else behind the admin gate.
func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.authRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(rm.mw.UserAuthMiddleware)
		r.Use(rm.mw.AdminAuthMiddleware)

		rm.productRoutes.RegisterRoutes(r)
		rm.categoryRoutes.RegisterRoutes(r)
		rm.orderRoutes.RegisterRoutes(r)
		rm.customerRoutes.RegisterRoutes(r)
		rm.bannerRoutes.RegisterRoutes(r)
		rm.cuttingRoutes.RegisterRoutes(r)
		rm.settingsRoutes.RegisterRoutes(r)
		rm.reportRoutes.RegisterRoutes(r)
		rm.searchRoutes.RegisterRoutes(r)
		rm.uploadRoutes.RegisterRoutes(r)
	})
}
