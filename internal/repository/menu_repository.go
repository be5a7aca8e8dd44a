package repository

import (
	"context"
	"fmt"

	"bobapos/internal/connections/database"
	"bobapos/internal/domain"
)

type MenuRepositoryInterface interface {
	GetAllMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItemIngredients(ctx context.Context, menuItemID int) ([]domain.MenuItemIngredient, error)
}

type MenuRepository struct {
	db *database.Conn
}

func NewMenuRepository(db *database.Conn) MenuRepositoryInterface {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) GetAllMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT menuitemid, drinkcategory, menuitemname, price
		FROM menuitems
		ORDER BY menuitemid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.MenuItemID, &m.DrinkCategory, &m.MenuItemName, &m.Price); err != nil {
			return nil, fmt.Errorf("failed to scan menu item row: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *MenuRepository) GetMenuItemIngredients(ctx context.Context, menuItemID int) ([]domain.MenuItemIngredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.ingredientid, i.ingredientname, mi.ingredientqty
		FROM menuitemingredients mi
		INNER JOIN inventory i ON i.ingredientid = mi.ingredientid
		WHERE mi.menuitemid = $1
		ORDER BY i.ingredientid
	`, menuItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu item ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := make([]domain.MenuItemIngredient, 0)
	for rows.Next() {
		var ing domain.MenuItemIngredient
		if err := rows.Scan(&ing.IngredientID, &ing.IngredientName, &ing.IngredientQty); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient row: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}
