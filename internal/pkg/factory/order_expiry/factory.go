package order_expiry

import "time"

// Срок жизни заказа фиксированный: сутки с момента загрузки.
const orderTTL = 24 * time.Hour

type ExpiryTimeFactory struct{}

func New() *ExpiryTimeFactory {
	return &ExpiryTimeFactory{}
}

func (f *ExpiryTimeFactory) ExpiresAt(createdAt time.Time) time.Time {
	return createdAt.Add(orderTTL)
}
