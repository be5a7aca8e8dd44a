package repository

import (
	"context"
	"fmt"
	"time"

	"bobapos/internal/connections/database"
)

type AnalyticsRepositoryInterface interface {
	ProductUsage(ctx context.Context) (map[string]int, error)
	TotalSales(ctx context.Context, start, end time.Time) (float64, error)
}

type AnalyticsRepository struct {
	db *database.Conn
}

func NewAnalyticsRepository(db *database.Conn) AnalyticsRepositoryInterface {
	return &AnalyticsRepository{db: db}
}

// ProductUsage returns units sold per menu item name.
func (r *AnalyticsRepository) ProductUsage(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.menuitemname, COALESCE(SUM(oi.quantity), 0)
		FROM menuitems m
		LEFT JOIN orderitems oi ON oi.menuitemid = m.menuitemid
		GROUP BY m.menuitemname
		ORDER BY m.menuitemname
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product usage: %w", err)
	}
	defer rows.Close()

	usage := make(map[string]int)
	for rows.Next() {
		var name string
		var sold int
		if err := rows.Scan(&name, &sold); err != nil {
			return nil, fmt.Errorf("failed to scan product usage row: %w", err)
		}
		usage[name] = sold
	}
	return usage, rows.Err()
}

func (r *AnalyticsRepository) TotalSales(ctx context.Context, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(totalcost), 0)
		FROM orders
		WHERE timeoforder >= $1 AND timeoforder <= $2
	`, start, end).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch total sales: %w", err)
	}
	return total, nil
}
