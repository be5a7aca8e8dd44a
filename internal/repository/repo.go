package repository

import "bobapos/internal/connections/database"

type Repository struct {
	Orders    OrderRepositoryInterface
	Menu      MenuRepositoryInterface
	Inventory InventoryRepositoryInterface
	Employees EmployeeRepositoryInterface
	Analytics AnalyticsRepositoryInterface
}

func New(db *database.Conn) *Repository {
	return &Repository{
		Orders:    NewOrderRepository(db),
		Menu:      NewMenuRepository(db),
		Inventory: NewInventoryRepository(db),
		Employees: NewEmployeeRepository(db),
		Analytics: NewAnalyticsRepository(db),
	}
}
