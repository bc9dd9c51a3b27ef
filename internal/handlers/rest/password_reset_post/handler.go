package password_reset_post

import (
	"encoding/json"
	"net/http"

	"printshop/internal/dto"
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
	var resetDTO dto.PasswordResetRequest
	err := json.NewDecoder(r.Body).Decode(&resetDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Ответ одинаков для существующих и несуществующих адресов,
	// почтовой доставки нет: токен попадает только в лог.
	token, err := h.service.RequestPasswordReset(r.Context(), resetDTO.Email)
	if err == nil {
		h.log.With(
			logger.NewField("email", resetDTO.Email),
			logger.NewField("reset_token", token),
		).Info("password reset requested")
	}

	w.WriteHeader(http.StatusAccepted)
}
