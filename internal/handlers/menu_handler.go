package handlers

import (
	"net/http"
	"strconv"

	"bobapos/internal/logger"
	"bobapos/internal/service"

	"github.com/go-chi/chi/v5"
)

type MenuHandler struct {
	service service.MenuServiceInterface
	logger  *logger.Logger
}

func NewMenuHandler(s service.MenuServiceInterface, lg *logger.Logger) *MenuHandler {
	return &MenuHandler{service: s, logger: lg}
}

func (mh *MenuHandler) GetAllMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := mh.service.GetAllMenuItems(r.Context())
	if err != nil {
		mh.logger.Error("fetch_menu_failed", err, nil)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, items)
}

func (mh *MenuHandler) GetMenuItemIngredients(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	ingredients, err := mh.service.GetMenuItemIngredients(r.Context(), menuItemID)
	if err != nil {
		mh.logger.Error("fetch_menu_ingredients_failed", err, map[string]any{"menu_item_id": menuItemID})
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, ingredients)
}
