package operator

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"printshop/internal/entities"
	"printshop/internal/repository"
	"printshop/internal/service/auth"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, email string, passwordHash []byte) (*entities.Operator, error) {
	query := `
		INSERT INTO operators (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, password_hash, created_at`

	var operatorDB OperatorDB
	err := r.querier.QueryRow(ctx, query, email, passwordHash).Scan(
		&operatorDB.ID,
		&operatorDB.Email,
		&operatorDB.PasswordHash,
		&operatorDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, auth.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected operator repository create error: %w", err)
	}

	return ToDomain(&operatorDB), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Operator, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM operators
		WHERE email = $1`

	return r.getOne(ctx, query, email)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Operator, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM operators
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) UpdatePassword(ctx context.Context, id int64, passwordHash []byte) error {
	query := `
		UPDATE operators
		SET password_hash = $2
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("unexpected operator repository update password error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return auth.ErrOperatorNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Operator, error) {
	var operatorDB OperatorDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(
		&operatorDB.ID,
		&operatorDB.Email,
		&operatorDB.PasswordHash,
		&operatorDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("unexpected operator repository get error: %w", err)
	}

	return ToDomain(&operatorDB), nil
}
