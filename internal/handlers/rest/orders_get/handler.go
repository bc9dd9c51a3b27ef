package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"printshop/internal/dto"
	"printshop/internal/entities"
	authmw "printshop/internal/pkg/middlewares/auth"
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

	var statusFilter *entities.OrderStatusType
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := entities.OrderStatusType(statusStr)
		statusFilter = &status
	}

	dashboard, err := h.service.GetDashboard(r.Context(), shopEntity.ID, statusFilter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.Dashboard{
		Orders:         make([]dto.Order, 0, len(dashboard.Orders)),
		Counts:         make(map[string]int, len(dashboard.Counts)),
		RevenueToday:   dashboard.RevenueToday,
		PendingRevenue: dashboard.PendingRevenue,
	}
	for i := range dashboard.Orders {
		response.Orders = append(response.Orders, toOrderDTO(&dashboard.Orders[i]))
	}
	for status, count := range dashboard.Counts {
		response.Counts[status.String()] = count
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

func toOrderDTO(o *entities.Order) dto.Order {
	return dto.Order{
		ID:            o.ID,
		FileName:      o.FileName,
		FileURL:       o.FileURL,
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		Copies:        o.Copies,
		ColorMode:     o.ColorMode.String(),
		Duplex:        o.Duplex,
		PaperSize:     o.PaperSize,
		Binding:       o.Binding,
		Instructions:  o.Instructions,
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status.EffectiveStatus().String(),
		Cost:          o.Cost(),
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		ExpiresAt:     o.ExpiresAt.Format(time.RFC3339),
	}
}
