package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"printshop/internal/entities"
)

// Подтверждение способа оплаты происходит вне сервиса; пока провайдер
// не подключен, pending-методы активируются фоновой задачей по таймеру.
const confirmDelay = 30 * time.Second

type Billing struct {
	repository Repository
}

func New(repository Repository) *Billing {
	return &Billing{
		repository: repository,
	}
}

func (s *Billing) List(ctx context.Context, shopID int64) ([]entities.PaymentMethod, error) {
	methods, err := s.repository.ListByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	return methods, nil
}

// Add сохраняет только ярлык способа оплаты со статусом pending.
// Платежные реквизиты не принимаются и не хранятся.
func (s *Billing) Add(ctx context.Context, shopID int64, kind entities.PaymentMethodKind, label string) (*entities.PaymentMethod, error) {
	switch kind {
	case entities.PaymentKindCard, entities.PaymentKindGateway, entities.PaymentKindMpesa:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}

	method, err := s.repository.Create(ctx, shopID, kind, label)
	if err != nil {
		return nil, fmt.Errorf("create payment method: %w", err)
	}
	return method, nil
}

func (s *Billing) Remove(ctx context.Context, shopID, id int64) error {
	if err := s.repository.SoftDelete(ctx, shopID, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("remove payment method: %w", err)
	}
	return nil
}

// ConfirmPending активирует отлежавшиеся pending-методы. Вызывается воркером.
func (s *Billing) ConfirmPending(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-confirmDelay)

	activated, err := s.repository.ActivatePendingBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("confirm pending payment methods: %w", err)
	}
	return activated, nil
}
