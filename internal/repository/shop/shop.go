package shop

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"printshop/internal/entities"
	"printshop/internal/repository"
	"printshop/internal/service/shop"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shopColumns = `id, operator_id, name, code, bw_rate, color_rate, duplex_factor,
		retention_days, auto_delete, printer_prefs, created_at, updated_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, operatorID int64, name, code string) (*entities.Shop, error) {
	// тарифы и настройки принтера берутся из DEFAULT колонок
	query := `
		INSERT INTO shops (operator_id, name, code)
		VALUES ($1, $2, $3)
		RETURNING ` + shopColumns

	var shopDB ShopDB
	err := r.querier.QueryRow(ctx, query, operatorID, name, code).Scan(
		&shopDB.ID,
		&shopDB.OperatorID,
		&shopDB.Name,
		&shopDB.Code,
		&shopDB.BWRate,
		&shopDB.ColorRate,
		&shopDB.DuplexFactor,
		&shopDB.RetentionDays,
		&shopDB.AutoDelete,
		&shopDB.PrinterPrefs,
		&shopDB.CreatedAt,
		&shopDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shop.ErrConflict
		}
		return nil, fmt.Errorf("unexpected shop repository create error: %w", err)
	}

	return ToDomain(&shopDB)
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*entities.Shop, error) {
	query := `
		SELECT ` + shopColumns + `
		FROM shops
		WHERE code = $1`

	return r.getOne(ctx, query, code)
}

func (r *Repository) GetByOperator(ctx context.Context, operatorID int64) (*entities.Shop, error) {
	query := `
		SELECT ` + shopColumns + `
		FROM shops
		WHERE operator_id = $1`

	return r.getOne(ctx, query, operatorID)
}

func (r *Repository) Update(ctx context.Context, shopModifyEntity entities.ShopModify) (*entities.Shop, error) {
	shopModifyDB, err := FromDomainModify(&shopModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected shop repository update error: %w", err)
	}

	builder := qb.
		Update("shops")

	// опционнные поля
	if shopModifyDB.Name != nil {
		builder = builder.Set("name", shopModifyDB.Name)
	}
	if shopModifyDB.BWRate != nil {
		builder = builder.Set("bw_rate", shopModifyDB.BWRate)
	}
	if shopModifyDB.ColorRate != nil {
		builder = builder.Set("color_rate", shopModifyDB.ColorRate)
	}
	if shopModifyDB.DuplexFactor != nil {
		builder = builder.Set("duplex_factor", shopModifyDB.DuplexFactor)
	}
	if shopModifyDB.RetentionDays != nil {
		builder = builder.Set("retention_days", shopModifyDB.RetentionDays)
	}
	if shopModifyDB.AutoDelete != nil {
		builder = builder.Set("auto_delete", shopModifyDB.AutoDelete)
	}
	if shopModifyDB.PrinterPrefs != nil {
		builder = builder.Set("printer_prefs", shopModifyDB.PrinterPrefs)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": shopModifyDB.ID}).
		Suffix("RETURNING " + shopColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shop repository update error: %w", err)
	}

	var shopDB ShopDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&shopDB.ID,
		&shopDB.OperatorID,
		&shopDB.Name,
		&shopDB.Code,
		&shopDB.BWRate,
		&shopDB.ColorRate,
		&shopDB.DuplexFactor,
		&shopDB.RetentionDays,
		&shopDB.AutoDelete,
		&shopDB.PrinterPrefs,
		&shopDB.CreatedAt,
		&shopDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shop.ErrShopNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shop.ErrConflict
		}
		return nil, fmt.Errorf("unexpected shop repository update error: %w", err)
	}

	return ToDomain(&shopDB)
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Shop, error) {
	var shopDB ShopDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(
		&shopDB.ID,
		&shopDB.OperatorID,
		&shopDB.Name,
		&shopDB.Code,
		&shopDB.BWRate,
		&shopDB.ColorRate,
		&shopDB.DuplexFactor,
		&shopDB.RetentionDays,
		&shopDB.AutoDelete,
		&shopDB.PrinterPrefs,
		&shopDB.CreatedAt,
		&shopDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shop.ErrShopNotFound
		}
		return nil, fmt.Errorf("unexpected shop repository get error: %w", err)
	}

	return ToDomain(&shopDB)
}
