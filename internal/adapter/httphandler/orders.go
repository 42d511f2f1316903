package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/order"
	"github.com/stickerlab/backend/internal/core/port"
)

// POST /api/orders JSON in any supported legacy or current schema
// GET  /api/orders?email=user@example.com

type OrdersHandler struct {
	placer   port.OrderPlacer
	provider port.OrdersProvider
}

func RegisterOrders(
	mux *http.ServeMux, placer port.OrderPlacer, provider port.OrdersProvider,
) {
	h := OrdersHandler{placer, provider}
	mux.HandleFunc("POST /api/orders", h.PostOrder)
	mux.HandleFunc("GET /api/orders", h.GetOrders)
}

func (h OrdersHandler) PostOrder(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.PostOrder"
	log := slog.With("op", op)

	var s order.Submission
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	placed, err := h.placer.PlaceOrder(r.Context(), s)
	if err != nil {
		var vErr domain.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "Validation failed",
				Details: vErr.Violations,
			})
			return
		}
		log.Error("failed to place order", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	log.Info("order created",
		"orderId", placed.Order.OrderID,
		"emailQueued", placed.EmailQueued,
	)
	writeJSON(w, http.StatusCreated, orderCreatedResponse{
		Success:               true,
		Message:               "Order created successfully",
		OrderID:               placed.Order.OrderID,
		OrderDate:             placed.Order.OrderDate.Format(time.RFC3339),
		Total:                 placed.Order.Total,
		Status:                string(placed.Order.Status),
		EmailNotificationSent: placed.EmailQueued,
	})
}

func (h OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.GetOrders"
	log := slog.With("op", op)

	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "Missing required parameter: email")
		return
	}

	orders, err := h.provider.OrdersByEmail(r.Context(), email)
	if err != nil {
		log.Error("failed to read orders", "err", err)
		writeError(w, http.StatusInternalServerError, "Database error occurred")
		return
	}

	resp := ordersListResponse{
		Success: true,
		Count:   len(orders),
		Orders:  make([]orderSummary, len(orders)),
	}
	for i, o := range orders {
		resp.Orders[i] = orderSummary{
			OrderID:   o.OrderID,
			OrderDate: o.OrderDate.Format(time.RFC3339),
			Status:    string(o.Status),
			Items:     len(o.Items),
			Total:     o.Total,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
