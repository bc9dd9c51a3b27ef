//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_method_post_test
package payment_method_post

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

type ShopService interface {
	GetByOperator(ctx context.Context, operatorID int64) (*entities.Shop, error)
}

type Service interface {
	Add(ctx context.Context, shopID int64, kind entities.PaymentMethodKind, label string) (*entities.PaymentMethod, error)
}
