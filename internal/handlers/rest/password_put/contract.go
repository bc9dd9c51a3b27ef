//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=password_put_test
package password_put

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
	UpdatePassword(ctx context.Context, operatorID int64, current, newPassword string) error
}
