package http

import (
	"net/http"

	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/service"
)

type OrderHandler struct {
	requestSvc service.RequestService
}

func NewOrderHandler(requestSvc service.RequestService) *OrderHandler {
	return &OrderHandler{requestSvc: requestSvc}
}

// List handles GET /api/v1/orders, the financial projection of rental
// requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	page, pageSize := pagination(r)

	orders, total, err := h.requestSvc.ListOrders(r.Context(), status, page, pageSize)
	if err != nil {
		logger.Error("Order listing failed", "error", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	Success(w, map[string]any{"orders": orders, "total": total}, "Rent orders retrieved successfully")
}
