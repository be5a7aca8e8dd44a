package service

import (
	"context"
	"errors"

	"bobapos/internal/domain"
	"bobapos/internal/repository"
)

var ErrMissingFields = errors.New("Missing required fields")

type InventoryServiceInterface interface {
	GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error)
	AddIngredient(ctx context.Context, req domain.AddInventoryRequest) (*domain.Ingredient, error)
	UpdateQuantity(ctx context.Context, ingredientID, newQuantity int) (*domain.Ingredient, error)
}

type InventoryService struct {
	inventory repository.InventoryRepositoryInterface
}

func NewInventoryService(inventory repository.InventoryRepositoryInterface) InventoryServiceInterface {
	return &InventoryService{inventory: inventory}
}

func (s *InventoryService) GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	return s.inventory.GetAllIngredients(ctx)
}

func (s *InventoryService) AddIngredient(ctx context.Context, req domain.AddInventoryRequest) (*domain.Ingredient, error) {
	if req.IngredientName == "" || req.IngredientCount < 0 {
		return nil, ErrMissingFields
	}
	return s.inventory.AddIngredient(ctx, req.IngredientName, req.IngredientCount)
}

func (s *InventoryService) UpdateQuantity(ctx context.Context, ingredientID, newQuantity int) (*domain.Ingredient, error) {
	if newQuantity < 0 {
		return nil, ErrMissingFields
	}
	return s.inventory.UpdateQuantity(ctx, ingredientID, newQuantity)
}
