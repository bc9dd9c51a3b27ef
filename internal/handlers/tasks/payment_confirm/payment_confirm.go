package payment_confirm

import (
	"context"
	"time"

	"printshop/pkg/logger"
)

type Service interface {
	ConfirmPending(ctx context.Context) (int64, error)
}

type PaymentConfirm struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPaymentConfirm(log logger.Logger, service Service, interval time.Duration) *PaymentConfirm {
	return &PaymentConfirm{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PaymentConfirm) TTL() time.Duration {
	return p.interval
}

func (p *PaymentConfirm) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	activated, err := p.service.ConfirmPending(ctxWithTimeout)

	if activated > 0 {
		p.log.With(
			logger.NewField("activated_methods", activated),
		).Info("payment method confirmation")
	}

	return err
}

func (p *PaymentConfirm) Info() string {
	return "payment method confirmation"
}
