//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_cancel_delete_test
package order_cancel_delete

import (
	"context"

	"printshop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CancelByCustomer(ctx context.Context, orderID int64, phone string) error
}
