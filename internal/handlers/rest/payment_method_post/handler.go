package payment_method_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"printshop/internal/dto"
	"printshop/internal/entities"
	authmw "printshop/internal/pkg/middlewares/auth"
	"printshop/internal/service/billing"
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

	var createDTO dto.PaymentMethodCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
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

	method, err := h.service.Add(r.Context(), shopEntity.ID, entities.PaymentMethodKind(createDTO.Kind), createDTO.Label)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidKind),
			errors.Is(err, billing.ErrEmptyLabel):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PaymentMethod{
		ID:     method.ID,
		Kind:   method.Kind.String(),
		Label:  method.Label,
		Status: method.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
