package handlers

import (
	"net/http"
	"time"

	"bobapos/internal/logger"
	"bobapos/internal/service"
)

type AnalyticsHandler struct {
	service service.AnalyticsServiceInterface
	logger  *logger.Logger
}

func NewAnalyticsHandler(s service.AnalyticsServiceInterface, lg *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{service: s, logger: lg}
}

func (ah *AnalyticsHandler) ProductUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := ah.service.ProductUsage(r.Context())
	if err != nil {
		ah.logger.Error("fetch_product_usage_failed", err, nil)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, usage)
}

func (ah *AnalyticsHandler) TotalSales(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("startDate"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid startDate")
		return
	}
	end, err := parseDate(r.URL.Query().Get("endDate"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid endDate")
		return
	}
	// endDate is a day bound, not an instant
	end = end.Add(24*time.Hour - time.Nanosecond)

	report, err := ah.service.TotalSales(r.Context(), start, end)
	if err != nil {
		ah.logger.Error("fetch_sales_failed", err, nil)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, report)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
