//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"printshop/internal/entities"
)

// ExecuteFn — обработчик события для конкретного статуса заказа.
type ExecuteFn func(ctx context.Context, orderID int64) error

type HandlerFactory interface {
	GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

type SubscriptionRepository interface {
	MarkNotified(ctx context.Context, orderID int64, notifiedAt time.Time) error
	DeleteByOrder(ctx context.Context, orderID int64) error
}
