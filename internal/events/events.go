package events

import "time"

// Topic — единственный топик событий жизненного цикла заказа.
const TopicOrderStatusChanged = "order.status.changed"

// OrderStatusChanged публикуется API-сервером на каждый переход статуса
// и на мягкое удаление (Cancelled=true). Доставка at-least-once, без порядка.
type OrderStatusChanged struct {
	OrderID    int64     `json:"order_id"`
	ShopID     int64     `json:"shop_id"`
	Phone      string    `json:"phone"`
	Status     string    `json:"status"`
	Cancelled  bool      `json:"cancelled,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
