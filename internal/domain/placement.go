package domain

import (
	"errors"
	"fmt"
)

// Rejection messages surface verbatim in the API envelope, so they keep the
// exact wording the clients match on.
var (
	ErrEmptyOrder      = errors.New("Order must contain at least one item")
	ErrInvalidQuantity = errors.New("Each order item must have a positive quantity")
	ErrNotFound        = errors.New("not found")
)

// InsufficientStockError names the first ingredient whose stock cannot cover
// the requested order.
type InsufficientStockError struct {
	IngredientID int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient inventory for ingredient ID: %d", e.IngredientID)
}

type PlacementStatus string

// Terminal states of one order submission. Rejected covers both the
// pre-transaction validation failures and the in-transaction stock check;
// RolledBack is reserved for unexpected write-phase failures.
const (
	PlacementRejected   PlacementStatus = "rejected"
	PlacementCommitted  PlacementStatus = "committed"
	PlacementRolledBack PlacementStatus = "rolled_back"
)

// Placement is the tagged outcome of an order submission.
type Placement struct {
	Status PlacementStatus
	Order  *Order
	Items  []OrderItem
	Reason error
}

func Rejected(reason error) Placement {
	return Placement{Status: PlacementRejected, Reason: reason}
}

func RolledBack(reason error) Placement {
	return Placement{Status: PlacementRolledBack, Reason: reason}
}

func Committed(order *Order, items []OrderItem) Placement {
	return Placement{Status: PlacementCommitted, Order: order, Items: items}
}
