package subscription

import (
	"context"
	"fmt"
	"time"

	"printshop/internal/repository"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderID int64, phone string) error {
	query := `
		INSERT INTO subscriptions (order_id, phone)
		VALUES ($1, $2)`

	_, err := r.querier.Exec(ctx, query, orderID, phone)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			// повторная подписка того же телефона на заказ безвредна
			return nil
		}
		return fmt.Errorf("unexpected subscription repository create error: %w", err)
	}

	return nil
}

func (r *Repository) MarkNotified(ctx context.Context, orderID int64, notifiedAt time.Time) error {
	query := `
		UPDATE subscriptions
		SET notified_at = $2
		WHERE order_id = $1 AND notified_at IS NULL`

	_, err := r.querier.Exec(ctx, query, orderID, notifiedAt)
	if err != nil {
		return fmt.Errorf("unexpected subscription repository mark notified error: %w", err)
	}

	return nil
}

func (r *Repository) DeleteByOrder(ctx context.Context, orderID int64) error {
	query := `
		DELETE FROM subscriptions WHERE order_id = $1`

	_, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected subscription repository delete error: %w", err)
	}

	return nil
}
