package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bobapos/internal/domain"
	"bobapos/internal/logger"
	"bobapos/internal/service"

	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	service service.OrderServiceInterface
	logger  *logger.Logger
}

func NewOrderHandler(s service.OrderServiceInterface, lg *logger.Logger) *OrderHandler {
	return &OrderHandler{service: s, logger: lg}
}

func (oh *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	placement := oh.service.PlaceOrder(r.Context(), req)
	switch placement.Status {
	case domain.PlacementCommitted:
		respondData(w, http.StatusCreated, placement.Order)
	case domain.PlacementRejected:
		respondError(w, http.StatusBadRequest, placement.Reason.Error())
	default:
		// Infrastructure failures stay out of the response body; details are
		// already logged by the service.
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (oh *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := oh.service.GetAllOrders(r.Context())
	if err != nil {
		oh.logger.Error("fetch_orders_failed", err, nil)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, orders)
}

func (oh *OrderHandler) GetOrderItems(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	items, err := oh.service.GetOrderItems(r.Context(), orderID)
	if err != nil {
		oh.logger.Error("fetch_order_items_failed", err, map[string]any{"order_id": orderID})
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, items)
}

func (oh *OrderHandler) CompleteOrderItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order item ID")
		return
	}

	var req domain.CompleteItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	isComplete := true
	if req.IsComplete != nil {
		isComplete = *req.IsComplete
	}

	detail, err := oh.service.CompleteOrderItem(r.Context(), itemID, isComplete)
	if errors.Is(err, domain.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Order item not found")
		return
	}
	if err != nil {
		oh.logger.Error("complete_order_item_failed", err, map[string]any{"order_item_id": itemID})
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, detail)
}
