//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_get_test
package orders_get

import (
	"context"

	"printshop/internal/entities"
	"printshop/internal/service/order"
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
	GetDashboard(ctx context.Context, shopID int64, statusFilter *entities.OrderStatusType) (*order.Dashboard, error)
}
