//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_put_test
package order_status_put

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
	Transition(ctx context.Context, shopID, orderID int64, to entities.OrderStatusType) (*entities.Order, error)
}
