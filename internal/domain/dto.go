package domain

import "time"

type CreateOrderRequest struct {
	TimeOfOrder *time.Time       `json:"timeoforder,omitempty"`
	CustomerID  *int             `json:"customerid,omitempty"`
	EmployeeID  int              `json:"employeeid"`
	TotalCost   float64          `json:"totalcost"`
	OrderWeek   int              `json:"orderweek"`
	OrderItems  []OrderItemInput `json:"orderItems"`
}

type OrderItemInput struct {
	MenuItemID int     `json:"menuitemid"`
	Quantity   int     `json:"quantity"`
	Size       string  `json:"size,omitempty"`
	Price      float64 `json:"price,omitempty"`
}

type AddInventoryRequest struct {
	IngredientName  string `json:"ingredientname"`
	IngredientCount int    `json:"ingredientcount"`
}

type UpdateQuantityRequest struct {
	NewQuantity int `json:"newQuantity"`
}

type EmployeeRequest struct {
	EmployeeName string   `json:"employeename"`
	EmployeeRole string   `json:"employeerole"`
	HoursWorked  *float64 `json:"hoursworked"`
}

type CompleteItemRequest struct {
	IsComplete *bool `json:"isComplete"`
}

type SalesReport struct {
	TotalSales float64 `json:"totalSales"`
}

// OrderEvent is the message published to the orders exchange for the
// barista/menu board.
type OrderEvent struct {
	OrderID     int         `json:"orderid"`
	TimeOfOrder time.Time   `json:"timeoforder"`
	EmployeeID  int         `json:"employeeid"`
	TotalCost   float64     `json:"totalcost"`
	Items       []OrderItem `json:"items,omitempty"`
	Status      string      `json:"status"`
}
