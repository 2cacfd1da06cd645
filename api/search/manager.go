package search

import (
	"lahmah_server/lib"
	"lahmah_server/services"
	"lahmah_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SearchRoutesManager struct {
	logger          *gecho.Logger
	productService  *services.ProductService
	orderService    *services.OrderService
	customerService *services.CustomerService
}

func NewSearchRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	orderService *services.OrderService,
	customerService *services.CustomerService,
) *SearchRoutesManager {
	return &SearchRoutesManager{
		logger:          logger,
		productService:  productService,
		orderService:    orderService,
		customerService: customerService,
	}
}

func (srm *SearchRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/search", srm.Search)
}

// Search handles GET /search?q= across products, orders and customers,
// each section capped at 20 rows. A section's failure empties that
// section without failing the others.
func (srm *SearchRoutesManager) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	term := lib.SanitizeString(r.URL.Query().Get("q"), true, true)
	if term == "" {
		gecho.BadRequest(w, gecho.WithMessage("Search query is required"), gecho.Send())
		return
	}

	products, err := srm.productService.SearchProducts(ctx, term)
	if err != nil {
		srm.logger.Warn("Product search failed", gecho.Field("term", term), gecho.Field("error", err))
		products = []tables.Product{}
	}
	orders, err := srm.orderService.SearchOrders(ctx, term)
	if err != nil {
		srm.logger.Warn("Order search failed", gecho.Field("term", term), gecho.Field("error", err))
		orders = []tables.Order{}
	}
	customers, err := srm.customerService.SearchCustomers(ctx, term)
	if err != nil {
		srm.logger.Warn("Customer search failed", gecho.Field("term", term), gecho.Field("error", err))
		customers = []tables.Profile{}
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":  products,
			"orders":    orders,
			"customers": customers,
		}),
		gecho.Send(),
	)
}
