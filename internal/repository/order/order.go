package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"printshop/internal/entities"
	"printshop/internal/repository"
	"printshop/internal/service/order"
)

const orderColumns = `id, shop_id, file_name, file_url, customer_name, phone, copies,
		color_mode, duplex, paper_size, binding, instructions, payment_method,
		status, created_at, expires_at, deleted_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyDB := FromDomainModify(&orderModifyEntity)

	query := `
		INSERT INTO orders (shop_id, file_name, file_url, customer_name, phone, copies,
			color_mode, duplex, paper_size, binding, instructions, payment_method,
			status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyDB.ShopID,
		orderModifyDB.FileName,
		orderModifyDB.FileURL,
		orderModifyDB.CustomerName,
		orderModifyDB.Phone,
		orderModifyDB.Copies,
		orderModifyDB.ColorMode,
		orderModifyDB.Duplex,
		orderModifyDB.PaperSize,
		orderModifyDB.Binding,
		orderModifyDB.Instructions,
		orderModifyDB.PaymentMethod,
		orderModifyDB.Status,
		orderModifyDB.ExpiresAt,
	).Scan(
		&orderDB.ID,
		&orderDB.ShopID,
		&orderDB.FileName,
		&orderDB.FileURL,
		&orderDB.CustomerName,
		&orderDB.Phone,
		&orderDB.Copies,
		&orderDB.ColorMode,
		&orderDB.Duplex,
		&orderDB.PaperSize,
		&orderDB.Binding,
		&orderDB.Instructions,
		&orderDB.PaymentMethod,
		&orderDB.Status,
		&orderDB.CreatedAt,
		&orderDB.ExpiresAt,
		&orderDB.DeletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&orderDB.ID,
		&orderDB.ShopID,
		&orderDB.FileName,
		&orderDB.FileURL,
		&orderDB.CustomerName,
		&orderDB.Phone,
		&orderDB.Copies,
		&orderDB.ColorMode,
		&orderDB.Duplex,
		&orderDB.PaperSize,
		&orderDB.Binding,
		&orderDB.Instructions,
		&orderDB.PaymentMethod,
		&orderDB.Status,
		&orderDB.CreatedAt,
		&orderDB.ExpiresAt,
		&orderDB.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) ListLiveByShop(ctx context.Context, shopID int64, now time.Time) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE shop_id = $1
		  AND deleted_at IS NULL
		  AND expires_at > $2
		ORDER BY created_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, shopID, now)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.ShopID,
			&orderDB.FileName,
			&orderDB.FileURL,
			&orderDB.CustomerName,
			&orderDB.Phone,
			&orderDB.Copies,
			&orderDB.ColorMode,
			&orderDB.Duplex,
			&orderDB.PaperSize,
			&orderDB.Binding,
			&orderDB.Instructions,
			&orderDB.PaymentMethod,
			&orderDB.Status,
			&orderDB.CreatedAt,
			&orderDB.ExpiresAt,
			&orderDB.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) error {
	query := `
		UPDATE orders
		SET status = $2
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.querier.Exec(ctx, query, id, status.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error {
	query := `
		UPDATE orders
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.querier.Exec(ctx, query, id, deletedAt)
	if err != nil {
		return fmt.Errorf("unexpected order repository soft delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// SoftDeleteExpired скрывает истекшие заказы магазинов с включенным
// автоудалением; документы на диске не трогаем.
func (r *Repository) SoftDeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE orders
		SET deleted_at = $1
		WHERE deleted_at IS NULL
		  AND expires_at <= $1
		  AND EXISTS (
			SELECT 1
			FROM shops
			WHERE shops.id = orders.shop_id
			  AND shops.auto_delete
		  )`

	result, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository cleanup error: %w", err)
	}

	return result.RowsAffected(), nil
}
