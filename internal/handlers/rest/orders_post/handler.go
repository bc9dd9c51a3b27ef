package orders_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"printshop/internal/dto"
	"printshop/internal/entities"
	"printshop/internal/service/order"
	"printshop/internal/service/shop"
	"printshop/pkg/logger"
)

// лимит памяти на разбор multipart-формы, остальное уходит во временные файлы
const maxFormMemory = 32 << 20

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

// fileOptions — опции печати одного файла; поле формы options содержит
// JSON-массив, выровненный с порядком файлов.
type fileOptions struct {
	Copies    int    `json:"copies"`
	ColorMode string `json:"color_mode"`
	Duplex    bool   `json:"duplex"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Warn("remove multipart temp files")
		}
	}()

	fileHeaders := r.MultipartForm.File["files"]

	var options []fileOptions
	if raw := r.FormValue("options"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &options); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	req := order.SubmitRequest{
		ShopCode:      r.FormValue("code"),
		CustomerName:  r.FormValue("customer_name"),
		Phone:         r.FormValue("phone"),
		PaperSize:     r.FormValue("paper_size"),
		Binding:       r.FormValue("binding"),
		Instructions:  r.FormValue("instructions"),
		PaymentMethod: r.FormValue("payment_method"),
		Files:         make([]order.FileSubmission, 0, len(fileHeaders)),
	}
	if req.PaperSize == "" {
		req.PaperSize = entities.DefaultPaperSize
	}

	opened := make([]interface{ Close() error }, 0, len(fileHeaders))
	defer func() {
		for _, f := range opened {
			if err := f.Close(); err != nil {
				h.log.With(
					logger.NewField("error", err),
				).Warn("close uploaded file")
			}
		}
	}()

	for i, hdr := range fileHeaders {
		file, err := hdr.Open()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		opened = append(opened, file)

		submission := order.FileSubmission{
			FileName:    hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			Size:        hdr.Size,
			Copies:      1,
			ColorMode:   entities.DefaultColorMode,
			Content:     file,
		}
		if i < len(options) {
			if options[i].Copies > 0 {
				submission.Copies = options[i].Copies
			}
			if options[i].ColorMode != "" {
				submission.ColorMode = entities.ColorModeType(options[i].ColorMode)
			}
			submission.Duplex = options[i].Duplex
		}

		req.Files = append(req.Files, submission)
	}

	result, err := h.service.Submit(r.Context(), req)
	if err != nil {
		switch {
		case order.IsValidationError(err):
			h.writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, shop.ErrEmptyCode):
			h.writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, shop.ErrShopNotFound):
			h.writeError(w, http.StatusNotFound, err)
		default:
			// пакет не атомарен: часть заказов могла создаться до сбоя
			h.log.With(
				logger.NewField("error", err),
			).Error("order batch submit failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrdersSubmitResponse{
		Created:   make([]dto.Order, 0, len(result.Created)),
		Rejected:  make([]dto.RejectedFile, 0, len(result.Rejected)),
		TotalCost: result.TotalCost,
	}
	for i := range result.Created {
		response.Created = append(response.Created, toOrderDTO(&result.Created[i]))
	}
	for _, rejected := range result.Rejected {
		response.Rejected = append(response.Rejected, dto.RejectedFile{
			FileName: rejected.FileName,
			Reason:   rejected.Reason,
		})
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

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encodeErr := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: err.Error()})
	if encodeErr != nil {
		h.log.With(
			logger.NewField("error", encodeErr),
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
