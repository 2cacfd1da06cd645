package orders

import (
	"lahmah_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	orderService *services.OrderService,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orm.ListOrders)
		r.Get("/{id}", orm.GetOrder)
		r.Patch("/{id}/status", orm.UpdateOrderStatus)
		r.Delete("/{id}", orm.DeleteOrder)
	})
}
