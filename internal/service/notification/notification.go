package notification

import (
	"context"
	"errors"
	"fmt"

	"printshop/internal/entities"
	"printshop/internal/events"
)

// Service обрабатывает события order.status.changed на стороне воркера.
// Доставка at-least-once и без гарантии порядка, поэтому статус события
// только подсказка: авторитетное состояние всегда перечитывается из базы.
type Service struct {
	orders        OrderRepository
	statusFactory HandlerFactory
}

func New(orders OrderRepository, statusFactory HandlerFactory) *Service {
	return &Service{
		orders:        orders,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessOrderStatusChange(ctx context.Context, ev events.OrderStatusChanged) (*entities.Order, error) {
	if ev.OrderID == 0 {
		return nil, fmt.Errorf("order id is required")
	}

	order, err := s.orders.GetByID(ctx, ev.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	status := order.Status.EffectiveStatus()
	if order.DeletedAt != nil {
		status = entities.OrderCancelled
	}

	executeFn, err := s.statusFactory.GetHandler(status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order.ID); err != nil {
		return nil, err
	}

	return order, nil
}
