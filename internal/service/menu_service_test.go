package service

import (
	"context"
	"errors"
	"testing"

	"bobapos/internal/cache"
	"bobapos/internal/domain"
	"bobapos/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMenuRepo struct {
	items []domain.MenuItem
	calls int
}

func (f *fakeMenuRepo) GetAllMenuItems(context.Context) ([]domain.MenuItem, error) {
	f.calls++
	return f.items, nil
}

func (f *fakeMenuRepo) GetMenuItemIngredients(context.Context, int) ([]domain.MenuItemIngredient, error) {
	return nil, nil
}

type fakeMenuCache struct {
	items  []domain.MenuItem
	hasSet bool
	fail   error
}

func (f *fakeMenuCache) GetMenuItems(context.Context) ([]domain.MenuItem, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if f.items == nil {
		return nil, cache.ErrCacheMiss
	}
	return f.items, nil
}

func (f *fakeMenuCache) SetMenuItems(_ context.Context, items []domain.MenuItem) error {
	f.items = items
	f.hasSet = true
	return nil
}

func TestGetAllMenuItemsCacheMissFillsCache(t *testing.T) {
	repo := &fakeMenuRepo{items: []domain.MenuItem{{MenuItemID: 1, MenuItemName: "Classic Milk Tea", DrinkCategory: "Milk Tea", Price: 5.25}}}
	c := &fakeMenuCache{}
	svc := NewMenuService(repo, c, logger.New("test"))

	items, err := svc.GetAllMenuItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.True(t, c.hasSet)
	assert.Equal(t, 1, repo.calls)

	// Second read is served from the cache.
	_, err = svc.GetAllMenuItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
}

func TestGetAllMenuItemsCacheErrorFallsThrough(t *testing.T) {
	repo := &fakeMenuRepo{items: []domain.MenuItem{{MenuItemID: 1}}}
	c := &fakeMenuCache{fail: errors.New("redis: connection refused")}
	svc := NewMenuService(repo, c, logger.New("test"))

	items, err := svc.GetAllMenuItems(context.Background())
	require.NoError(t, err, "cache failures must not break the menu endpoint")
	assert.Len(t, items, 1)
	assert.Equal(t, 1, repo.calls)
}

func TestGetAllMenuItemsNilCache(t *testing.T) {
	repo := &fakeMenuRepo{items: []domain.MenuItem{{MenuItemID: 1}}}
	svc := NewMenuService(repo, nil, logger.New("test"))

	items, err := svc.GetAllMenuItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
