package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bobapos/internal/connections/rabbitmq"
	"bobapos/internal/domain"
	"bobapos/internal/logger"
	"bobapos/internal/repository"
)

// OrderEventPublisher is the slice of the message broker the order service
// needs. A nil publisher disables events without touching placement logic.
type OrderEventPublisher interface {
	Publish(ctx context.Context, key string, body []byte) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req domain.CreateOrderRequest) domain.Placement
	GetAllOrders(ctx context.Context) ([]domain.Order, error)
	GetOrderItems(ctx context.Context, orderID int) ([]domain.OrderItemDetail, error)
	CompleteOrderItem(ctx context.Context, orderItemID int, isComplete bool) (*domain.OrderItemDetail, error)
}

type OrderService struct {
	orders    repository.OrderRepositoryInterface
	publisher OrderEventPublisher
	logger    *logger.Logger
}

func NewOrderService(orders repository.OrderRepositoryInterface, publisher OrderEventPublisher, lg *logger.Logger) OrderServiceInterface {
	return &OrderService{orders: orders, publisher: publisher, logger: lg}
}

// PlaceOrder drives one submission through its states:
// received -> validating -> rejected, or -> committing -> committed | rolled back.
// Structural validation happens before any database interaction; the stock
// check and all writes share one transaction inside the repository.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.CreateOrderRequest) domain.Placement {
	if len(req.OrderItems) == 0 {
		return domain.Rejected(domain.ErrEmptyOrder)
	}
	for _, item := range req.OrderItems {
		if item.Quantity <= 0 {
			return domain.Rejected(domain.ErrInvalidQuantity)
		}
	}

	order, items, err := s.orders.CreateOrderTx(ctx, req)
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			s.logger.Warn("order_rejected", map[string]any{"ingredient_id": insufficient.IngredientID})
			return domain.Rejected(insufficient)
		}
		s.logger.Error("order_rolled_back", err, nil)
		return domain.RolledBack(err)
	}

	s.publishEvent(order, items, "placed", rabbitmq.RoutingKeyOrderPlaced)
	s.logger.Info("order_committed", map[string]any{"order_id": order.OrderID, "total_cost": order.TotalCost})
	return domain.Committed(order, items)
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.GetAllOrders(ctx)
}

func (s *OrderService) GetOrderItems(ctx context.Context, orderID int) ([]domain.OrderItemDetail, error) {
	return s.orders.GetOrderItems(ctx, orderID)
}

func (s *OrderService) CompleteOrderItem(ctx context.Context, orderItemID int, isComplete bool) (*domain.OrderItemDetail, error) {
	detail, orderComplete, err := s.orders.SetOrderItemComplete(ctx, orderItemID, isComplete)
	if err != nil {
		return nil, err
	}
	if orderComplete {
		event := domain.OrderEvent{OrderID: detail.OrderID, Status: "completed", TimeOfOrder: time.Now().UTC()}
		s.publish(event, rabbitmq.RoutingKeyOrderCompleted)
	}
	return detail, nil
}

func (s *OrderService) publishEvent(order *domain.Order, items []domain.OrderItem, status, key string) {
	s.publish(domain.OrderEvent{
		OrderID:     order.OrderID,
		TimeOfOrder: order.TimeOfOrder,
		EmployeeID:  order.EmployeeID,
		TotalCost:   order.TotalCost,
		Items:       items,
		Status:      status,
	}, key)
}

// publish is best effort: the order is already durable in Postgres, so a
// broker failure is logged and the request still succeeds.
func (s *OrderService) publish(event domain.OrderEvent, key string) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("order_event_marshal_failed", err, nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.publisher.Publish(ctx, key, body); err != nil {
		s.logger.Error("order_event_publish_failed", err, map[string]any{"order_id": event.OrderID})
	}
}
