//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=billing_test
package billing

import (
	"context"
	"time"

	"printshop/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shopID int64, kind entities.PaymentMethodKind, label string) (*entities.PaymentMethod, error)
	ListByShop(ctx context.Context, shopID int64) ([]entities.PaymentMethod, error)
	SoftDelete(ctx context.Context, shopID, id int64, deletedAt time.Time) error
	ActivatePendingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
