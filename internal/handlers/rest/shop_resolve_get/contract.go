//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shop_resolve_get_test
package shop_resolve_get

import (
	"context"

	"printshop/internal/entities"
	"printshop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ResolveByCode(ctx context.Context, code string) (*entities.Shop, error)
}
