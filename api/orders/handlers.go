package orders

import (
	"lahmah_server/handling"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type statusUpdate struct {
	Status string `json:"status" validate:"required"`
}

// ListOrders handles GET /orders with an optional ?status= filter
func (orm *OrderRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	opts := handling.ParseOrderListOptions(r)

	orders, err := orm.orderService.GetOrders(r.Context(), opts)
	if err != nil {
		orm.logger.Error("Failed to fetch orders", gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch orders")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": orders,
			"count":  len(orders),
		}),
		gecho.Send(),
	)
}

// GetOrder handles GET /orders/{id}, expanding items and the customer profile
func (orm *OrderRoutesManager) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order ID"), gecho.Send())
		return
	}

	order, err := orm.orderService.GetOrderByID(r.Context(), id)
	if err != nil {
		orm.logger.Error("Failed to fetch order", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to fetch order")
		return
	}
	if order == nil {
		gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

// UpdateOrderStatus handles PATCH /orders/{id}/status
func (orm *OrderRoutesManager) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order ID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[statusUpdate](r)
	if err != nil {
		orm.logger.Warn("Invalid status payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Status is required"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.UpdateOrderStatus(r.Context(), id, tables.OrderStatus(body.Status))
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
			return
		}

		orm.logger.Error("Failed to update order status", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to update order status")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order status updated"),
		gecho.WithData(order),
		gecho.Send(),
	)
}

// DeleteOrder handles DELETE /orders/{id}
func (orm *OrderRoutesManager) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order ID"), gecho.Send())
		return
	}

	if err := orm.orderService.DeleteOrder(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
			return
		}

		orm.logger.Error("Failed to delete order", gecho.Field("id", id), gecho.Field("error", err))
		handling.WriteStoreError(w, err, "Failed to delete order")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order deleted"),
		gecho.Send(),
	)
}
