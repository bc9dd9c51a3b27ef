package entities

import "time"

// PaymentMethod описывает только ярлык способа оплаты.
// Реальные платежные реквизиты никогда не сохраняются.
type PaymentMethod struct {
	ID        int64
	ShopID    int64
	Kind      PaymentMethodKind
	Label     string
	Status    PaymentMethodStatus
	CreatedAt time.Time
	DeletedAt *time.Time
}

type PaymentMethodKind string

const (
	PaymentKindCard    PaymentMethodKind = "card"
	PaymentKindGateway PaymentMethodKind = "gateway"
	PaymentKindMpesa   PaymentMethodKind = "mpesa"
)

func (k PaymentMethodKind) String() string {
	return string(k)
}

type PaymentMethodStatus string

const (
	PaymentStatusActive  PaymentMethodStatus = "active"
	PaymentStatusPending PaymentMethodStatus = "pending"
	PaymentStatusExpired PaymentMethodStatus = "expired"
)

func (s PaymentMethodStatus) String() string {
	return string(s)
}
