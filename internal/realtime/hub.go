package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"printshop/internal/events"
	"printshop/pkg/logger"
)

type hubLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Hub рассылает изменения заказов подписчикам веб-сокетов.
// Ключ подписки — телефон клиента или id магазина; одно событие уходит
// на оба ключа. Гарантии доставки: at-least-once, без порядка —
// потребители фильтруют и перечитывают состояние сами.
type Hub struct {
	log        hubLogger
	register   chan *Client
	unregister chan *Client
	broadcast  chan events.OrderStatusChanged
	clients    map[string]map[*Client]bool
}

func NewHub(log hubLogger) *Hub {
	return &Hub{
		log:        log.With(),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan events.OrderStatusChanged, 64),
		clients:    make(map[string]map[*Client]bool),
	}
}

func PhoneKey(phone string) string {
	return "phone:" + phone
}

func ShopKey(shopID int64) string {
	return fmt.Sprintf("shop:%d", shopID)
}

// Run обслуживает подписки до отмены контекста.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			set, ok := h.clients[c.key]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[c.key] = set
			}
			set[c] = true

		case c := <-h.unregister:
			if set, ok := h.clients[c.key]; ok {
				if _, exists := set[c]; exists {
					delete(set, c)
					close(c.send)
				}
				if len(set) == 0 {
					delete(h.clients, c.key)
				}
			}

		case ev := <-h.broadcast:
			msg, err := json.Marshal(ev)
			if err != nil {
				h.log.Error("marshal order event",
					logger.NewField("error", err),
				)
				continue
			}
			h.deliver(ShopKey(ev.ShopID), msg)
			h.deliver(PhoneKey(ev.Phone), msg)

		case <-ctx.Done():
			for _, set := range h.clients {
				for c := range set {
					close(c.send)
				}
			}
			return
		}
	}
}

func (h *Hub) deliver(key string, msg []byte) {
	set, ok := h.clients[key]
	if !ok {
		return
	}
	for c := range set {
		select {
		case c.send <- msg:
		default:
			// медленный клиент отключается, перечитает состояние при reconnect
			delete(set, c)
			close(c.send)
		}
	}
}

// BroadcastOrderEvent не блокирует вызывающий переход статуса.
func (h *Hub) BroadcastOrderEvent(ev events.OrderStatusChanged) {
	select {
	case h.broadcast <- ev:
	default:
		go func() { h.broadcast <- ev }()
	}
}
