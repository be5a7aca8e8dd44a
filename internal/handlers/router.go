package handlers

import (
	"net/http"
	"time"

	"bobapos/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func NewRouter(h *Handler, lg *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(requestLogger(lg))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respond(w, http.StatusOK, Envelope{Success: true, Data: map[string]string{"name": "bobapos", "status": "OK"}})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/orders", h.Orders.GetAllOrders)
		r.Post("/orders", h.Orders.CreateOrder)
		r.Get("/orders/{id}/items", h.Orders.GetOrderItems)
		r.Patch("/orders/items/{id}/complete", h.Orders.CompleteOrderItem)

		r.Get("/employees", h.Employees.GetAllEmployees)
		r.Post("/employees", h.Employees.AddEmployee)
		r.Put("/employees/{id}", h.Employees.UpdateEmployee)
		r.Delete("/employees/{id}", h.Employees.DeleteEmployee)

		r.Get("/inventory", h.Inventory.GetAllInventory)
		r.Post("/inventory", h.Inventory.AddInventoryItem)
		r.Put("/inventory/{id}/quantity", h.Inventory.UpdateQuantity)

		r.Get("/menu", h.Menu.GetAllMenuItems)
		r.Get("/menu/{id}/ingredients", h.Menu.GetMenuItemIngredients)

		r.Get("/analytics/product-usage", h.Analytics.ProductUsage)
		r.Get("/analytics/sales", h.Analytics.TotalSales)
	})

	return r
}

// requestLogger emits one JSON line per request with a generated request id.
func requestLogger(lg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			lg.WithRequestID(requestID).Info("http_request", map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}
