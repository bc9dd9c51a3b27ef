//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shop_get_test
package shop_get

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
	GetByOperator(ctx context.Context, operatorID int64) (*entities.Shop, error)
	UploadLink(code string) string
}
