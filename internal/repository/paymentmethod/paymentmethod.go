package paymentmethod

import (
	"context"
	"fmt"
	"time"

	"printshop/internal/entities"
	"printshop/internal/repository"
	"printshop/internal/service/billing"
)

const methodColumns = `id, shop_id, kind, label, status, created_at, deleted_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shopID int64, kind entities.PaymentMethodKind, label string) (*entities.PaymentMethod, error) {
	query := `
		INSERT INTO payment_methods (shop_id, kind, label, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + methodColumns

	var methodDB PaymentMethodDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shopID,
		kind.String(),
		label,
		entities.PaymentStatusPending.String(),
	).Scan(
		&methodDB.ID,
		&methodDB.ShopID,
		&methodDB.Kind,
		&methodDB.Label,
		&methodDB.Status,
		&methodDB.CreatedAt,
		&methodDB.DeletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment method repository create error: %w", err)
	}

	return ToDomain(&methodDB), nil
}

func (r *Repository) ListByShop(ctx context.Context, shopID int64) ([]entities.PaymentMethod, error) {
	query := `
		SELECT ` + methodColumns + `
		FROM payment_methods
		WHERE shop_id = $1 AND deleted_at IS NULL
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment method repository list error: %w", err)
	}
	defer rows.Close()

	methodModels := make([]PaymentMethodDB, 0, 4)
	for rows.Next() {
		var methodDB PaymentMethodDB
		err := rows.Scan(
			&methodDB.ID,
			&methodDB.ShopID,
			&methodDB.Kind,
			&methodDB.Label,
			&methodDB.Status,
			&methodDB.CreatedAt,
			&methodDB.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected payment method repository list error: %w", err)
		}
		methodModels = append(methodModels, methodDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment method repository list error: %w", err)
	}

	return ToDomainList(methodModels), nil
}

func (r *Repository) SoftDelete(ctx context.Context, shopID, id int64, deletedAt time.Time) error {
	query := `
		UPDATE payment_methods
		SET deleted_at = $3
		WHERE id = $2 AND shop_id = $1 AND deleted_at IS NULL`

	result, err := r.querier.Exec(ctx, query, shopID, id, deletedAt)
	if err != nil {
		return fmt.Errorf("unexpected payment method repository soft delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return billing.ErrPaymentMethodNotFound
	}

	return nil
}

func (r *Repository) ActivatePendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE payment_methods
		SET status = $1
		WHERE status = $2
		  AND deleted_at IS NULL
		  AND created_at <= $3`

	result, err := r.querier.Exec(
		ctx,
		query,
		entities.PaymentStatusActive.String(),
		entities.PaymentStatusPending.String(),
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected payment method repository activate error: %w", err)
	}

	return result.RowsAffected(), nil
}
