package shop_resolve_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"printshop/internal/dto"
	"printshop/internal/service/shop"
	"printshop/pkg/logger"
)

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
	code := r.URL.Query().Get("code")

	shopEntity, err := h.service.ResolveByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, shop.ErrEmptyCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shop.ErrShopNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ShopResolveResponse{
		ID:   shopEntity.ID,
		Name: shopEntity.Name,
		Code: shopEntity.Code,
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
