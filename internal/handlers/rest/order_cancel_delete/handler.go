package order_cancel_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"printshop/internal/service/order"
)

// Handler отменяет заказ по телефону клиента: токена у клиента нет,
// совпадение телефона с заказом и есть идентификация.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	phone := r.URL.Query().Get("phone")

	err = h.service.CancelByCustomer(r.Context(), orderID, phone)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingPhone):
			w.WriteHeader(http.StatusBadRequest)
		// чужой телефон неотличим от несуществующего заказа
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
