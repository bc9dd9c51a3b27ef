package shop_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"printshop/internal/dto"
	"printshop/internal/entities"
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

	var shopUpdateDTO dto.ShopUpdate
	err := json.NewDecoder(r.Body).Decode(&shopUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shopModify := entities.ShopModify{
		Name:          shopUpdateDTO.Name,
		BWRate:        shopUpdateDTO.BWRate,
		ColorRate:     shopUpdateDTO.ColorRate,
		DuplexFactor:  shopUpdateDTO.DuplexFactor,
		RetentionDays: shopUpdateDTO.RetentionDays,
		AutoDelete:    shopUpdateDTO.AutoDelete,
	}
	if shopUpdateDTO.PrinterPrefs != nil {
		shopModify.PrinterPrefs = &entities.PrinterPrefs{
			ConnectionMethod: shopUpdateDTO.PrinterPrefs.ConnectionMethod,
			DefaultPaperSize: shopUpdateDTO.PrinterPrefs.DefaultPaperSize,
			DefaultColorMode: entities.ColorModeType(shopUpdateDTO.PrinterPrefs.DefaultColorMode),
			Duplex:           shopUpdateDTO.PrinterPrefs.Duplex,
		}
	}

	updated, err := h.service.UpdateSettings(r.Context(), operatorID, shopModify)
	if err != nil {
		switch {
		case errors.Is(err, shop.ErrMissingRequiredFields),
			errors.Is(err, shop.ErrInvalidName),
			errors.Is(err, shop.ErrInvalidRate),
			errors.Is(err, shop.ErrInvalidRetention):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shop.ErrShopNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, shop.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Shop{
		ID:            updated.ID,
		Name:          updated.Name,
		Code:          updated.Code,
		BWRate:        updated.BWRate,
		ColorRate:     updated.ColorRate,
		DuplexFactor:  updated.DuplexFactor,
		RetentionDays: updated.RetentionDays,
		AutoDelete:    updated.AutoDelete,
		PrinterPrefs: dto.PrinterPrefs{
			ConnectionMethod: updated.PrinterPrefs.ConnectionMethod,
			DefaultPaperSize: updated.PrinterPrefs.DefaultPaperSize,
			DefaultColorMode: updated.PrinterPrefs.DefaultColorMode.String(),
			Duplex:           updated.PrinterPrefs.Duplex,
		},
		UploadLink: h.service.UploadLink(updated.Code),
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
