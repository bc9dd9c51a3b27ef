//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"io"
	"time"

	"printshop/internal/entities"
	"printshop/internal/events"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	ListLiveByShop(ctx context.Context, shopID int64, now time.Time) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) error
	SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error
	SoftDeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, orderID int64, phone string) error
}

type ShopService interface {
	ResolveByCode(ctx context.Context, code string) (*entities.Shop, error)
}

// DocumentStore кладет содержимое документа и возвращает публичный URL.
type DocumentStore interface {
	Save(ctx context.Context, fileName string, r io.Reader) (string, error)
}

// Publisher и Broadcaster уведомляют best-effort: сбой доставки события
// не откатывает уже выполненный переход, адаптеры логируют сбои сами.
type Publisher interface {
	PublishOrderStatusChanged(ctx context.Context, ev events.OrderStatusChanged)
}

type Broadcaster interface {
	BroadcastOrderEvent(ev events.OrderStatusChanged)
}

type ExpiryFactory interface {
	ExpiresAt(createdAt time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
