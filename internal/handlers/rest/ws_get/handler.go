package ws_get

import (
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"printshop/internal/realtime"
	"printshop/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// браузерная страница загрузки живет на другом origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler подписывает веб-сокет на события заказов: клиент по телефону,
// оператор по id магазина. Жизненный цикл подписки равен жизни соединения.
type Handler struct {
	log handlerLogger
	hub *realtime.Hub
}

func New(log handlerLogger, hub *realtime.Hub) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		hub: hub,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var key string
	switch {
	case r.URL.Query().Get("phone") != "":
		key = realtime.PhoneKey(r.URL.Query().Get("phone"))
	case r.URL.Query().Get("shop_id") != "":
		shopID, err := strconv.ParseInt(r.URL.Query().Get("shop_id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		key = realtime.ShopKey(shopID)
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade failed")
		return
	}

	realtime.NewClient(h.hub, conn, key)
}
