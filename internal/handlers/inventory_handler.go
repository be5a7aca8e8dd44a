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

type InventoryHandler struct {
	service service.InventoryServiceInterface
	logger  *logger.Logger
}

func NewInventoryHandler(s service.InventoryServiceInterface, lg *logger.Logger) *InventoryHandler {
	return &InventoryHandler{service: s, logger: lg}
}

func (ih *InventoryHandler) GetAllInventory(w http.ResponseWriter, r *http.Request) {
	ingredients, err := ih.service.GetAllIngredients(r.Context())
	if err != nil {
		ih.logger.Error("fetch_inventory_failed", err, nil)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, ingredients)
}

func (ih *InventoryHandler) AddInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req domain.AddInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ingredient, err := ih.service.AddIngredient(r.Context(), req)
	if errors.Is(err, service.ErrMissingFields) {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err != nil {
		ih.logger.Error("add_inventory_failed", err, nil)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusCreated, ingredient)
}

func (ih *InventoryHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ingredient ID")
		return
	}

	var req domain.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ingredient, err := ih.service.UpdateQuantity(r.Context(), id, req.NewQuantity)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		respondError(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "Ingredient not found")
	case err != nil:
		ih.logger.Error("update_inventory_failed", err, map[string]any{"ingredient_id": id})
		respondError(w, http.StatusInternalServerError, "internal server error")
	default:
		respondData(w, http.StatusOK, ingredient)
	}
}
