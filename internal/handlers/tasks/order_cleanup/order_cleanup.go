package order_cleanup

import (
	"context"
	"time"

	"printshop/pkg/logger"
)

type Service interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

type OrderCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderCleanup(log logger.Logger, service Service, interval time.Duration) *OrderCleanup {
	return &OrderCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderCleanup) TTL() time.Duration {
	return o.interval
}

func (o *OrderCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	rowsAffected, err := o.service.CleanupExpired(ctxWithTimeout)

	if rowsAffected > 0 {
		o.log.With(
			logger.NewField("expired_orders", rowsAffected),
		).Info("order cleanup")
	}

	return err
}

func (o *OrderCleanup) Info() string {
	return "order cleanup"
}
