//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"printshop/internal/entities"
)

type OperatorRepository interface {
	Create(ctx context.Context, email string, passwordHash []byte) (*entities.Operator, error)
	GetByEmail(ctx context.Context, email string) (*entities.Operator, error)
	GetByID(ctx context.Context, id int64) (*entities.Operator, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash []byte) error
}

type ShopService interface {
	CreateShop(ctx context.Context, operatorID int64, name, code string) (*entities.Shop, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
