package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"bobapos/internal/connections/database"
	"bobapos/internal/domain"

	"github.com/jackc/pgx/v5"
)

type OrderRepositoryInterface interface {
	CreateOrderTx(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, []domain.OrderItem, error)
	GetAllOrders(ctx context.Context) ([]domain.Order, error)
	GetOrderItems(ctx context.Context, orderID int) ([]domain.OrderItemDetail, error)
	SetOrderItemComplete(ctx context.Context, orderItemID int, isComplete bool) (*domain.OrderItemDetail, bool, error)
}

type OrderRepository struct {
	db *database.Conn
}

func NewOrderRepository(db *database.Conn) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

// CreateOrderTx runs the whole validate-then-commit sequence on a single
// transaction. Validation reads stock per line item and names the first
// insufficient ingredient; the write phase re-checks atomically with a
// conditional decrement, so two concurrent submissions can never both consume
// stock that only covers one of them.
func (r *OrderRepository) CreateOrderTx(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, []domain.OrderItem, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Validation pass: read-only, no stock reserved yet.
	required := make(map[int]int)
	for _, item := range req.OrderItems {
		rows, err := tx.Query(ctx, `
			SELECT i.ingredientid, i.ingredientcount, mi.ingredientqty
			FROM inventory i
			INNER JOIN menuitemingredients mi ON i.ingredientid = mi.ingredientid
			WHERE mi.menuitemid = $1
		`, item.MenuItemID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check inventory for menu item %d: %w", item.MenuItemID, err)
		}

		for rows.Next() {
			var ingredientID, available, requiredPerDrink int
			if err := rows.Scan(&ingredientID, &available, &requiredPerDrink); err != nil {
				rows.Close()
				return nil, nil, fmt.Errorf("failed to scan inventory row: %w", err)
			}
			totalRequired := requiredPerDrink * item.Quantity
			if available < totalRequired {
				rows.Close()
				return nil, nil, &domain.InsufficientStockError{IngredientID: ingredientID}
			}
			required[ingredientID] += totalRequired
		}
		if err := rows.Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to read inventory rows: %w", err)
		}
	}

	timeOfOrder := time.Now().UTC()
	if req.TimeOfOrder != nil {
		timeOfOrder = *req.TimeOfOrder
	}

	var order domain.Order
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (timeoforder, customerid, employeeid, totalcost, orderweek, is_complete)
		VALUES ($1, $2, $3, $4, $5, false)
		RETURNING orderid, timeoforder, customerid, employeeid, totalcost, orderweek, is_complete
	`, timeOfOrder, req.CustomerID, req.EmployeeID, req.TotalCost, req.OrderWeek).Scan(
		&order.OrderID, &order.TimeOfOrder, &order.CustomerID,
		&order.EmployeeID, &order.TotalCost, &order.OrderWeek, &order.IsComplete,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert order: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(req.OrderItems))
	for _, in := range req.OrderItems {
		size := in.Size
		if size == "" {
			size = "Medium"
		}
		var it domain.OrderItem
		err = tx.QueryRow(ctx, `
			INSERT INTO orderitems (orderid, menuitemid, quantity, size, is_complete)
			VALUES ($1, $2, $3, $4, false)
			RETURNING orderitemid, orderid, menuitemid, quantity, size, is_complete
		`, order.OrderID, in.MenuItemID, in.Quantity, size).Scan(
			&it.OrderItemID, &it.OrderID, &it.MenuItemID, &it.Quantity, &it.Size, &it.IsComplete,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to insert order item for menu item %d: %w", in.MenuItemID, err)
		}
		items = append(items, it)
	}

	// Decrement in ingredient-id order so concurrent orders touching the same
	// rows cannot deadlock each other.
	ids := make([]int, 0, len(required))
	for id := range required {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		tag, err := tx.Exec(ctx, `
			UPDATE inventory
			SET ingredientcount = ingredientcount - $2
			WHERE ingredientid = $1 AND ingredientcount >= $2
		`, id, required[id])
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decrement ingredient %d: %w", id, err)
		}
		// Zero rows means another transaction consumed the stock after our
		// validation read; treat it exactly like a failed validation.
		if tag.RowsAffected() == 0 {
			return nil, nil, &domain.InsufficientStockError{IngredientID: id}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &order, items, nil
}

func (r *OrderRepository) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT orderid, timeoforder, customerid, employeeid, totalcost, orderweek, is_complete
		FROM orders
		ORDER BY timeoforder DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.OrderID, &o.TimeOfOrder, &o.CustomerID,
			&o.EmployeeID, &o.TotalCost, &o.OrderWeek, &o.IsComplete); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) GetOrderItems(ctx context.Context, orderID int) ([]domain.OrderItemDetail, error) {
	rows, err := r.db.Query(ctx, `
		SELECT oi.orderitemid, oi.orderid, oi.menuitemid, oi.quantity, oi.size, oi.is_complete,
		       m.menuitemname, m.price
		FROM orderitems oi
		INNER JOIN menuitems m ON oi.menuitemid = m.menuitemid
		WHERE oi.orderid = $1
		ORDER BY oi.orderitemid
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OrderItemDetail, 0)
	for rows.Next() {
		var d domain.OrderItemDetail
		if err := rows.Scan(&d.OrderItemID, &d.OrderID, &d.MenuItemID, &d.Quantity,
			&d.Size, &d.IsComplete, &d.MenuItemName, &d.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// SetOrderItemComplete flips one item's flag and keeps the parent order's flag
// in sync. The second return value reports whether the whole order is now
// complete.
func (r *OrderRepository) SetOrderItemComplete(ctx context.Context, orderItemID int, isComplete bool) (*domain.OrderItemDetail, bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var orderID int
	err = tx.QueryRow(ctx, `
		UPDATE orderitems SET is_complete = $2
		WHERE orderitemid = $1
		RETURNING orderid
	`, orderItemID, isComplete).Scan(&orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, domain.ErrNotFound
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to update order item: %w", err)
	}

	var orderComplete bool
	err = tx.QueryRow(ctx, `
		SELECT NOT EXISTS (
			SELECT 1 FROM orderitems WHERE orderid = $1 AND is_complete = false
		)
	`, orderID).Scan(&orderComplete)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check order completion: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET is_complete = $2 WHERE orderid = $1`, orderID, orderComplete); err != nil {
		return nil, false, fmt.Errorf("failed to update order completion: %w", err)
	}

	var d domain.OrderItemDetail
	err = tx.QueryRow(ctx, `
		SELECT oi.orderitemid, oi.orderid, oi.menuitemid, oi.quantity, oi.size, oi.is_complete,
		       m.menuitemname, m.price
		FROM orderitems oi
		INNER JOIN menuitems m ON oi.menuitemid = m.menuitemid
		WHERE oi.orderitemid = $1
	`, orderItemID).Scan(&d.OrderItemID, &d.OrderID, &d.MenuItemID, &d.Quantity,
		&d.Size, &d.IsComplete, &d.MenuItemName, &d.Price)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch updated order item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &d, orderComplete, nil
}
