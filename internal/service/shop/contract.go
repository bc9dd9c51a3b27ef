//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shop_test
package shop

import (
	"context"

	"printshop/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, operatorID int64, name, code string) (*entities.Shop, error)
	GetByCode(ctx context.Context, code string) (*entities.Shop, error)
	GetByOperator(ctx context.Context, operatorID int64) (*entities.Shop, error)
	Update(ctx context.Context, shopModify entities.ShopModify) (*entities.Shop, error)
}
