package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"printshop/internal/dto"
	"printshop/internal/entities"
	authmw "printshop/internal/pkg/middlewares/auth"
	"printshop/internal/service/order"
	"printshop/internal/service/shop"
	"printshop/pkg/logger"
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

	var statusUpdateDTO dto.OrderStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
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

	updated, err := h.service.Transition(r.Context(), shopEntity.ID, orderID, entities.OrderStatusType(statusUpdateDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Order{
		ID:            updated.ID,
		FileName:      updated.FileName,
		FileURL:       updated.FileURL,
		CustomerName:  updated.CustomerName,
		Phone:         updated.Phone,
		Copies:        updated.Copies,
		ColorMode:     updated.ColorMode.String(),
		Duplex:        updated.Duplex,
		PaperSize:     updated.PaperSize,
		Binding:       updated.Binding,
		Instructions:  updated.Instructions,
		PaymentMethod: updated.PaymentMethod,
		Status:        updated.Status.EffectiveStatus().String(),
		Cost:          updated.Cost(),
		CreatedAt:     updated.CreatedAt.Format(time.RFC3339),
		ExpiresAt:     updated.ExpiresAt.Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
