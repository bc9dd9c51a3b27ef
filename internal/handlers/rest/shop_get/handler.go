package shop_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"printshop/internal/dto"
	authmw "printshop/internal/pkg/middlewares/auth"
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
	operatorID, ok := authmw.OperatorID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	shopEntity, err := h.service.GetByOperator(r.Context(), operatorID)
	if err != nil {
		switch {
		// аккаунт без магазина — клиент разлогинивается
		case errors.Is(err, shop.ErrShopNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Shop{
		ID:            shopEntity.ID,
		Name:          shopEntity.Name,
		Code:          shopEntity.Code,
		BWRate:        shopEntity.BWRate,
		ColorRate:     shopEntity.ColorRate,
		DuplexFactor:  shopEntity.DuplexFactor,
		RetentionDays: shopEntity.RetentionDays,
		AutoDelete:    shopEntity.AutoDelete,
		PrinterPrefs: dto.PrinterPrefs{
			ConnectionMethod: shopEntity.PrinterPrefs.ConnectionMethod,
			DefaultPaperSize: shopEntity.PrinterPrefs.DefaultPaperSize,
			DefaultColorMode: shopEntity.PrinterPrefs.DefaultColorMode.String(),
			Duplex:           shopEntity.PrinterPrefs.Duplex,
		},
		UploadLink: h.service.UploadLink(shopEntity.Code),
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
