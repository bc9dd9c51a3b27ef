package password_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"printshop/internal/dto"
	authmw "printshop/internal/pkg/middlewares/auth"
	"printshop/internal/service/auth"
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

	var passwordDTO dto.PasswordUpdate
	err := json.NewDecoder(r.Body).Decode(&passwordDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.UpdatePassword(r.Context(), operatorID, passwordDTO.CurrentPassword, passwordDTO.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrWeakPassword):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrInvalidCredentials):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, auth.ErrOperatorNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
