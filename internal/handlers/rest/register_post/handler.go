package register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"printshop/internal/dto"
	"printshop/internal/service/auth"
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
	var registerDTO dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	token, err := h.service.Register(r.Context(), registerDTO.Email, registerDTO.Password, registerDTO.ShopName, registerDTO.ShopCode)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidEmail),
			errors.Is(err, auth.ErrWeakPassword),
			errors.Is(err, shop.ErrInvalidName),
			errors.Is(err, shop.ErrInvalidCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrEmailTaken),
			errors.Is(err, shop.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TokenResponse{
		Token: token,
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
