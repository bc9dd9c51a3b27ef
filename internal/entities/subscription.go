package entities

import "time"

// Subscription связывает телефон клиента с заказом для уведомления о готовности.
type Subscription struct {
	ID         int64
	OrderID    int64
	Phone      string
	NotifiedAt *time.Time
	CreatedAt  time.Time
}
