package notification_handle

import (
	"context"
	"fmt"
	"time"

	"printshop/internal/entities"
	"printshop/internal/service/notification"
)

type StatusHandlerFactory struct {
	subscriptions notification.SubscriptionRepository
}

func NewStatusHandlerFactory(subscriptions notification.SubscriptionRepository) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		subscriptions: subscriptions,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (notification.ExecuteFn, error) {
	switch status {
	case entities.OrderCompleted:
		return f.completedHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", notification.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, orderID int64) error {
	err := f.subscriptions.MarkNotified(ctx, orderID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("notify subscriber for completed order %d: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID int64) error {
	err := f.subscriptions.DeleteByOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("release subscription for cancelled order %d: %w", orderID, err)
	}
	return nil
}
