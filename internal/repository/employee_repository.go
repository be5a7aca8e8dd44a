package repository

import (
	"context"
	"errors"
	"fmt"

	"bobapos/internal/connections/database"
	"bobapos/internal/domain"

	"github.com/jackc/pgx/v5"
)

type EmployeeRepositoryInterface interface {
	GetAllEmployees(ctx context.Context) ([]domain.Employee, error)
	AddEmployee(ctx context.Context, name, role string, hoursWorked float64) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, id int, name, role string, hoursWorked float64) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int) error
}

type EmployeeRepository struct {
	db *database.Conn
}

func NewEmployeeRepository(db *database.Conn) EmployeeRepositoryInterface {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.Query(ctx, `
		SELECT employeeid, employeename, employeerole, hoursworked
		FROM employees
		ORDER BY employeename
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.EmployeeID, &e.EmployeeName, &e.EmployeeRole, &e.HoursWorked); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// AddEmployee allocates the next id itself; the employees table keeps plain
// integer ids assigned by the application.
func (r *EmployeeRepository) AddEmployee(ctx context.Context, name, role string, hoursWorked float64) (*domain.Employee, error) {
	var e domain.Employee
	err := r.db.QueryRow(ctx, `
		INSERT INTO employees (employeeid, employeename, employeerole, hoursworked)
		SELECT COALESCE(MAX(employeeid), 0) + 1, $1, $2, $3 FROM employees
		RETURNING employeeid, employeename, employeerole, hoursworked
	`, name, role, hoursWorked).Scan(&e.EmployeeID, &e.EmployeeName, &e.EmployeeRole, &e.HoursWorked)
	if err != nil {
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, id int, name, role string, hoursWorked float64) (*domain.Employee, error) {
	var e domain.Employee
	err := r.db.QueryRow(ctx, `
		UPDATE employees SET employeename = $2, employeerole = $3, hoursworked = $4
		WHERE employeeid = $1
		RETURNING employeeid, employeename, employeerole, hoursworked
	`, id, name, role, hoursWorked).Scan(&e.EmployeeID, &e.EmployeeName, &e.EmployeeRole, &e.HoursWorked)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE employeeid = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
