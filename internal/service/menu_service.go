package service

import (
	"context"
	"errors"

	"bobapos/internal/cache"
	"bobapos/internal/domain"
	"bobapos/internal/logger"
	"bobapos/internal/repository"
)

type MenuServiceInterface interface {
	GetAllMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItemIngredients(ctx context.Context, menuItemID int) ([]domain.MenuItemIngredient, error)
}

type MenuService struct {
	menu   repository.MenuRepositoryInterface
	cache  cache.MenuCacheInterface
	logger *logger.Logger
}

func NewMenuService(menu repository.MenuRepositoryInterface, menuCache cache.MenuCacheInterface, lg *logger.Logger) MenuServiceInterface {
	return &MenuService{menu: menu, cache: menuCache, logger: lg}
}

// GetAllMenuItems is cache-aside: the menu board polls this constantly and the
// menu itself is reference data.
func (s *MenuService) GetAllMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil {
		items, err := s.cache.GetMenuItems(ctx)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("menu_cache_read_failed", map[string]any{"error": err.Error()})
		}
	}

	items, err := s.menu.GetAllMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetMenuItems(ctx, items); err != nil {
			s.logger.Warn("menu_cache_write_failed", map[string]any{"error": err.Error()})
		}
	}
	return items, nil
}

func (s *MenuService) GetMenuItemIngredients(ctx context.Context, menuItemID int) ([]domain.MenuItemIngredient, error) {
	return s.menu.GetMenuItemIngredients(ctx, menuItemID)
}
