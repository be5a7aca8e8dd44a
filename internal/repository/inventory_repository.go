package repository

import (
	"context"
	"errors"
	"fmt"

	"bobapos/internal/connections/database"
	"bobapos/internal/domain"

	"github.com/jackc/pgx/v5"
)

type InventoryRepositoryInterface interface {
	GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error)
	AddIngredient(ctx context.Context, name string, count int) (*domain.Ingredient, error)
	UpdateQuantity(ctx context.Context, ingredientID, newQuantity int) (*domain.Ingredient, error)
}

type InventoryRepository struct {
	db *database.Conn
}

func NewInventoryRepository(db *database.Conn) InventoryRepositoryInterface {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ingredientid, ingredientname, ingredientcount
		FROM inventory
		ORDER BY ingredientid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	defer rows.Close()

	ingredients := make([]domain.Ingredient, 0)
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.IngredientID, &ing.IngredientName, &ing.IngredientCount); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func (r *InventoryRepository) AddIngredient(ctx context.Context, name string, count int) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	err := r.db.QueryRow(ctx, `
		INSERT INTO inventory (ingredientname, ingredientcount)
		VALUES ($1, $2)
		RETURNING ingredientid, ingredientname, ingredientcount
	`, name, count).Scan(&ing.IngredientID, &ing.IngredientName, &ing.IngredientCount)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ingredient: %w", err)
	}
	return &ing, nil
}

func (r *InventoryRepository) UpdateQuantity(ctx context.Context, ingredientID, newQuantity int) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	err := r.db.QueryRow(ctx, `
		UPDATE inventory SET ingredientcount = $2
		WHERE ingredientid = $1
		RETURNING ingredientid, ingredientname, ingredientcount
	`, ingredientID, newQuantity).Scan(&ing.IngredientID, &ing.IngredientName, &ing.IngredientCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update ingredient quantity: %w", err)
	}
	return &ing, nil
}
