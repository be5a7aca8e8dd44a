package service

import (
	"bobapos/internal/cache"
	"bobapos/internal/logger"
	"bobapos/internal/repository"
)

type Service struct {
	Orders    OrderServiceInterface
	Menu      MenuServiceInterface
	Inventory InventoryServiceInterface
	Employees EmployeeServiceInterface
	Analytics AnalyticsServiceInterface
}

func New(repo *repository.Repository, publisher OrderEventPublisher, menuCache cache.MenuCacheInterface, lg *logger.Logger) *Service {
	return &Service{
		Orders:    NewOrderService(repo.Orders, publisher, lg),
		Menu:      NewMenuService(repo.Menu, menuCache, lg),
		Inventory: NewInventoryService(repo.Inventory),
		Employees: NewEmployeeService(repo.Employees),
		Analytics: NewAnalyticsService(repo.Analytics),
	}
}
