package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bobapos/internal/domain"
	"bobapos/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepo reproduces the transactional semantics of the Postgres
// repository in memory: all-or-nothing, conditional decrement under a lock.
type fakeOrderRepo struct {
	mu           sync.Mutex
	stock        map[int]int         // ingredient id -> count
	requirements map[int]map[int]int // menu item id -> ingredient id -> per-unit qty
	orders       []domain.Order
	items        []domain.OrderItem
	nextOrderID  int
	failCreate   error
	createCalls  int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		stock:        make(map[int]int),
		requirements: make(map[int]map[int]int),
	}
}

func (f *fakeOrderRepo) CreateOrderTx(_ context.Context, req domain.CreateOrderRequest) (*domain.Order, []domain.OrderItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++

	if f.failCreate != nil {
		return nil, nil, f.failCreate
	}

	required := make(map[int]int)
	for _, item := range req.OrderItems {
		for ingredientID, perUnit := range f.requirements[item.MenuItemID] {
			need := perUnit * item.Quantity
			if f.stock[ingredientID] < need {
				return nil, nil, &domain.InsufficientStockError{IngredientID: ingredientID}
			}
			required[ingredientID] += need
		}
	}
	for ingredientID, need := range required {
		if f.stock[ingredientID] < need {
			return nil, nil, &domain.InsufficientStockError{IngredientID: ingredientID}
		}
	}
	for ingredientID, need := range required {
		f.stock[ingredientID] -= need
	}

	f.nextOrderID++
	order := domain.Order{
		OrderID:     f.nextOrderID,
		TimeOfOrder: time.Now().UTC(),
		CustomerID:  req.CustomerID,
		EmployeeID:  req.EmployeeID,
		TotalCost:   req.TotalCost,
		OrderWeek:   req.OrderWeek,
	}
	items := make([]domain.OrderItem, 0, len(req.OrderItems))
	for i, in := range req.OrderItems {
		size := in.Size
		if size == "" {
			size = "Medium"
		}
		items = append(items, domain.OrderItem{
			OrderItemID: f.nextOrderID*100 + i,
			OrderID:     order.OrderID,
			MenuItemID:  in.MenuItemID,
			Quantity:    in.Quantity,
			Size:        size,
		})
	}
	f.orders = append(f.orders, order)
	f.items = append(f.items, items...)
	return &order, items, nil
}

func (f *fakeOrderRepo) GetAllOrders(context.Context) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Order(nil), f.orders...), nil
}

func (f *fakeOrderRepo) GetOrderItems(_ context.Context, orderID int) ([]domain.OrderItemDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	details := make([]domain.OrderItemDetail, 0)
	for _, it := range f.items {
		if it.OrderID == orderID {
			details = append(details, domain.OrderItemDetail{
				OrderItemID: it.OrderItemID,
				OrderID:     it.OrderID,
				MenuItemID:  it.MenuItemID,
				Quantity:    it.Quantity,
				Size:        it.Size,
				IsComplete:  it.IsComplete,
			})
		}
	}
	return details, nil
}

func (f *fakeOrderRepo) SetOrderItemComplete(_ context.Context, orderItemID int, isComplete bool) (*domain.OrderItemDetail, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var target *domain.OrderItem
	for i := range f.items {
		if f.items[i].OrderItemID == orderItemID {
			f.items[i].IsComplete = isComplete
			target = &f.items[i]
			break
		}
	}
	if target == nil {
		return nil, false, domain.ErrNotFound
	}
	orderComplete := true
	for _, it := range f.items {
		if it.OrderID == target.OrderID && !it.IsComplete {
			orderComplete = false
			break
		}
	}
	detail := domain.OrderItemDetail{
		OrderItemID: target.OrderItemID,
		OrderID:     target.OrderID,
		MenuItemID:  target.MenuItemID,
		Quantity:    target.Quantity,
		Size:        target.Size,
		IsComplete:  target.IsComplete,
	}
	return &detail, orderComplete, nil
}

type fakePublisher struct {
	mu   sync.Mutex
	keys []string
	fail error
}

func (p *fakePublisher) Publish(_ context.Context, key string, _ []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.keys = append(p.keys, key)
	return nil
}

func (p *fakePublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

func newTestOrderService(repo *fakeOrderRepo, pub *fakePublisher) OrderServiceInterface {
	return NewOrderService(repo, pub, logger.New("test"))
}

func orderRequest(menuItemID, quantity int) domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		EmployeeID: 1,
		TotalCost:  12.50,
		OrderWeek:  35,
		OrderItems: []domain.OrderItemInput{{MenuItemID: menuItemID, Quantity: quantity, Size: "Large"}},
	}
}

func TestPlaceOrderRejectsEmptyOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestOrderService(repo, &fakePublisher{})

	placement := svc.PlaceOrder(context.Background(), domain.CreateOrderRequest{EmployeeID: 1})

	assert.Equal(t, domain.PlacementRejected, placement.Status)
	assert.EqualError(t, placement.Reason, "Order must contain at least one item")
	assert.Zero(t, repo.createCalls, "empty order must be rejected before any database interaction")
}

func TestPlaceOrderRejectsNonPositiveQuantity(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestOrderService(repo, &fakePublisher{})

	placement := svc.PlaceOrder(context.Background(), orderRequest(1, 0))

	assert.Equal(t, domain.PlacementRejected, placement.Status)
	assert.ErrorIs(t, placement.Reason, domain.ErrInvalidQuantity)
	assert.Zero(t, repo.createCalls)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	// 10 units on hand, drink needs 3 units/cup, 4 cups ordered -> 12 required.
	repo := newFakeOrderRepo()
	repo.stock[7] = 10
	repo.requirements[1] = map[int]int{7: 3}
	pub := &fakePublisher{}
	svc := newTestOrderService(repo, pub)

	placement := svc.PlaceOrder(context.Background(), orderRequest(1, 4))

	require.Equal(t, domain.PlacementRejected, placement.Status)
	assert.EqualError(t, placement.Reason, "Insufficient inventory for ingredient ID: 7")
	assert.Equal(t, 10, repo.stock[7], "rejection must leave stock untouched")
	assert.Empty(t, repo.orders, "rejection must write no rows")
	assert.Empty(t, pub.published())
}

func TestPlaceOrderCommitsAndDecrementsStock(t *testing.T) {
	// Same order against 20 units: commits and leaves 8.
	repo := newFakeOrderRepo()
	repo.stock[7] = 20
	repo.requirements[1] = map[int]int{7: 3}
	pub := &fakePublisher{}
	svc := newTestOrderService(repo, pub)

	placement := svc.PlaceOrder(context.Background(), orderRequest(1, 4))

	require.Equal(t, domain.PlacementCommitted, placement.Status)
	require.NotNil(t, placement.Order)
	require.Len(t, placement.Items, 1)
	assert.Equal(t, 8, repo.stock[7])
	assert.Len(t, repo.orders, 1)
	assert.Equal(t, []string{"orders.placed"}, pub.published())
}

func TestPlaceOrderAggregatesSharedIngredientAcrossItems(t *testing.T) {
	// Two line items individually fit but jointly exceed the shared ingredient.
	repo := newFakeOrderRepo()
	repo.stock[3] = 10
	repo.requirements[1] = map[int]int{3: 4}
	repo.requirements[2] = map[int]int{3: 4}
	svc := newTestOrderService(repo, &fakePublisher{})

	req := domain.CreateOrderRequest{
		EmployeeID: 1,
		TotalCost:  9.00,
		OrderWeek:  35,
		OrderItems: []domain.OrderItemInput{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	}
	placement := svc.PlaceOrder(context.Background(), req)

	require.Equal(t, domain.PlacementRejected, placement.Status)
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, placement.Reason, &insufficient)
	assert.Equal(t, 3, insufficient.IngredientID)
	assert.Equal(t, 10, repo.stock[3])
}

func TestPlaceOrderZeroIngredientItemPasses(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestOrderService(repo, &fakePublisher{})

	placement := svc.PlaceOrder(context.Background(), orderRequest(99, 2))

	assert.Equal(t, domain.PlacementCommitted, placement.Status)
}

func TestPlaceOrderInfrastructureFailureRollsBack(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.failCreate = errors.New("connection reset by peer")
	pub := &fakePublisher{}
	svc := newTestOrderService(repo, pub)

	placement := svc.PlaceOrder(context.Background(), orderRequest(1, 1))

	assert.Equal(t, domain.PlacementRolledBack, placement.Status)
	assert.Error(t, placement.Reason)
	assert.Empty(t, pub.published(), "no event for a failed placement")
}

func TestPlaceOrderPublishFailureDoesNotFailPlacement(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.stock[7] = 20
	repo.requirements[1] = map[int]int{7: 3}
	pub := &fakePublisher{fail: errors.New("broker down")}
	svc := newTestOrderService(repo, pub)

	placement := svc.PlaceOrder(context.Background(), orderRequest(1, 4))

	assert.Equal(t, domain.PlacementCommitted, placement.Status, "committed order must not be failed by the broker")
	assert.Equal(t, 8, repo.stock[7])
}

func TestValidationIsIdempotent(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.stock[7] = 10
	repo.requirements[1] = map[int]int{7: 3}
	svc := newTestOrderService(repo, &fakePublisher{})

	first := svc.PlaceOrder(context.Background(), orderRequest(1, 4))
	second := svc.PlaceOrder(context.Background(), orderRequest(1, 4))

	assert.Equal(t, first.Status, second.Status)
	assert.EqualError(t, second.Reason, first.Reason.Error())
	assert.Equal(t, 10, repo.stock[7], "rejected validation must not mutate stock")
}

func TestConcurrentPlacementsNeverOversell(t *testing.T) {
	// Two orders, each fine alone (9 of 12 units) but jointly over stock.
	repo := newFakeOrderRepo()
	repo.stock[7] = 12
	repo.requirements[1] = map[int]int{7: 3}
	svc := newTestOrderService(repo, &fakePublisher{})

	results := make(chan domain.Placement, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- svc.PlaceOrder(context.Background(), orderRequest(1, 3))
		}()
	}
	wg.Wait()
	close(results)

	committed := 0
	for placement := range results {
		if placement.Status == domain.PlacementCommitted {
			committed++
		}
	}
	assert.Equal(t, 1, committed, "at most one of two jointly-oversubscribed orders may commit")
	assert.GreaterOrEqual(t, repo.stock[7], 0, "stock must never go negative")
	assert.Equal(t, 3, repo.stock[7])
}

func TestCompleteOrderItemPublishesWhenOrderDone(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.stock[7] = 100
	repo.requirements[1] = map[int]int{7: 1}
	pub := &fakePublisher{}
	svc := newTestOrderService(repo, pub)

	placement := svc.PlaceOrder(context.Background(), domain.CreateOrderRequest{
		EmployeeID: 1,
		TotalCost:  10,
		OrderWeek:  35,
		OrderItems: []domain.OrderItemInput{
			{MenuItemID: 1, Quantity: 1},
			{MenuItemID: 1, Quantity: 2},
		},
	})
	require.Equal(t, domain.PlacementCommitted, placement.Status)
	require.Len(t, placement.Items, 2)

	detail, err := svc.CompleteOrderItem(context.Background(), placement.Items[0].OrderItemID, true)
	require.NoError(t, err)
	assert.True(t, detail.IsComplete)
	assert.Equal(t, []string{"orders.placed"}, pub.published(), "order not finished yet")

	_, err = svc.CompleteOrderItem(context.Background(), placement.Items[1].OrderItemID, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"orders.placed", "orders.completed"}, pub.published())
}

func TestCompleteOrderItemNotFound(t *testing.T) {
	svc := newTestOrderService(newFakeOrderRepo(), &fakePublisher{})

	_, err := svc.CompleteOrderItem(context.Background(), 404, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
