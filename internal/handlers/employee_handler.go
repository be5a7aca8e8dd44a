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

type EmployeeHandler struct {
	service service.EmployeeServiceInterface
	logger  *logger.Logger
}

func NewEmployeeHandler(s service.EmployeeServiceInterface, lg *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{service: s, logger: lg}
}

func (eh *EmployeeHandler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := eh.service.GetAllEmployees(r.Context())
	if err != nil {
		eh.logger.Error("fetch_employees_failed", err, nil)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, employees)
}

func (eh *EmployeeHandler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var req domain.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	employee, err := eh.service.AddEmployee(r.Context(), req)
	if errors.Is(err, service.ErrMissingFields) {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err != nil {
		eh.logger.Error("add_employee_failed", err, nil)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusCreated, employee)
}

func (eh *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	var req domain.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	employee, err := eh.service.UpdateEmployee(r.Context(), id, req)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		respondError(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "Employee not found")
	case err != nil:
		eh.logger.Error("update_employee_failed", err, map[string]any{"employee_id": id})
		respondError(w, http.StatusInternalServerError, "internal server error")
	default:
		respondData(w, http.StatusOK, employee)
	}
}

func (eh *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	err = eh.service.DeleteEmployee(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		eh.logger.Error("delete_employee_failed", err, map[string]any{"employee_id": id})
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(w, http.StatusOK, Envelope{Success: true, Message: "Employee deleted successfully"})
}
