package paymentmethod

import "time"

type PaymentMethodDB struct {
	ID        int64
	ShopID    int64
	Kind      string
	Label     string
	Status    string
	CreatedAt time.Time
	DeletedAt *time.Time
}
