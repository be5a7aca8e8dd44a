package domain

import "time"

type MenuItem struct {
	MenuItemID    int     `json:"menuitemid"`
	DrinkCategory string  `json:"drinkcategory"`
	MenuItemName  string  `json:"menuitemname"`
	Price         float64 `json:"price"`
}

// MenuItemIngredient is one per-unit ingredient requirement of a menu item.
type MenuItemIngredient struct {
	IngredientID   int    `json:"ingredientid"`
	IngredientName string `json:"ingredientname"`
	IngredientQty  int    `json:"ingredientqty"`
}

type Ingredient struct {
	IngredientID    int    `json:"ingredientid"`
	IngredientName  string `json:"ingredientname"`
	IngredientCount int    `json:"ingredientcount"`
}

type Employee struct {
	EmployeeID   int     `json:"employeeid"`
	EmployeeName string  `json:"employeename"`
	EmployeeRole string  `json:"employeerole"`
	HoursWorked  float64 `json:"hoursworked"`
}

type Order struct {
	OrderID     int       `json:"orderid"`
	TimeOfOrder time.Time `json:"timeoforder"`
	CustomerID  *int      `json:"customerid"`
	EmployeeID  int       `json:"employeeid"`
	TotalCost   float64   `json:"totalcost"`
	OrderWeek   int       `json:"orderweek"`
	IsComplete  bool      `json:"is_complete"`
}

type OrderItem struct {
	OrderItemID int    `json:"orderitemid"`
	OrderID     int    `json:"orderid"`
	MenuItemID  int    `json:"menuitemid"`
	Quantity    int    `json:"quantity"`
	Size        string `json:"size"`
	IsComplete  bool   `json:"is_complete"`
}

// OrderItemDetail is an order item joined with its menu item for display.
type OrderItemDetail struct {
	OrderItemID  int     `json:"orderitemid"`
	OrderID      int     `json:"orderid"`
	MenuItemID   int     `json:"menuitemid"`
	Quantity     int     `json:"quantity"`
	Size         string  `json:"size"`
	IsComplete   bool    `json:"is_complete"`
	MenuItemName string  `json:"menuitemname"`
	Price        float64 `json:"price"`
}
