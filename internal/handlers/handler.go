package handlers

import (
	"bobapos/internal/logger"
	"bobapos/internal/service"
)

type Handler struct {
	Orders    *OrderHandler
	Employees *EmployeeHandler
	Inventory *InventoryHandler
	Menu      *MenuHandler
	Analytics *AnalyticsHandler
}

func New(s *service.Service, lg *logger.Logger) *Handler {
	return &Handler{
		Orders:    NewOrderHandler(s.Orders, lg),
		Employees: NewEmployeeHandler(s.Employees, lg),
		Inventory: NewInventoryHandler(s.Inventory, lg),
		Menu:      NewMenuHandler(s.Menu, lg),
		Analytics: NewAnalyticsHandler(s.Analytics, lg),
	}
}
