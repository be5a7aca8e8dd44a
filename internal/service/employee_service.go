package service

import (
	"context"

	"bobapos/internal/domain"
	"bobapos/internal/repository"
)

type EmployeeServiceInterface interface {
	GetAllEmployees(ctx context.Context) ([]domain.Employee, error)
	AddEmployee(ctx context.Context, req domain.EmployeeRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, id int, req domain.EmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int) error
}

type EmployeeService struct {
	employees repository.EmployeeRepositoryInterface
}

func NewEmployeeService(employees repository.EmployeeRepositoryInterface) EmployeeServiceInterface {
	return &EmployeeService{employees: employees}
}

func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.GetAllEmployees(ctx)
}

func (s *EmployeeService) AddEmployee(ctx context.Context, req domain.EmployeeRequest) (*domain.Employee, error) {
	if req.EmployeeName == "" || req.EmployeeRole == "" || req.HoursWorked == nil {
		return nil, ErrMissingFields
	}
	return s.employees.AddEmployee(ctx, req.EmployeeName, req.EmployeeRole, *req.HoursWorked)
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id int, req domain.EmployeeRequest) (*domain.Employee, error) {
	if req.EmployeeName == "" || req.EmployeeRole == "" || req.HoursWorked == nil {
		return nil, ErrMissingFields
	}
	return s.employees.UpdateEmployee(ctx, id, req.EmployeeName, req.EmployeeRole, *req.HoursWorked)
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int) error {
	return s.employees.DeleteEmployee(ctx, id)
}
