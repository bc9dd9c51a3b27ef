package order_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	authmw "printshop/internal/pkg/middlewares/auth"
	"printshop/internal/service/order"
	"printshop/internal/service/shop"
)

type Handler struct {
	log         handlerLogger
	shopService ShopService
	service     Service
}

func New(log handlerLogger, shopService ShopService, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:         handlerLog,
		shopService: shopService,
		service:     service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := authmw.OperatorID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shopEntity, err := h.shopService.GetByOperator(r.Context(), operatorID)
	if err != nil {
		switch {
		case errors.Is(err, shop.ErrShopNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	err = h.service.CancelByShop(r.Context(), shopEntity.ID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
