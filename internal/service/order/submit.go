package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"printshop/internal/entities"
)

// FileSubmission — один документ пакета со своими опциями печати.
type FileSubmission struct {
	FileName    string
	ContentType string
	Size        int64
	Copies      int
	ColorMode   entities.ColorModeType
	Duplex      bool
	Content     io.Reader
}

// SubmitRequest — пакет клиента: общие поля формы плюс файлы.
type SubmitRequest struct {
	ShopCode      string
	CustomerName  string
	Phone         string
	PaperSize     string
	Binding       string
	Instructions  string
	PaymentMethod string
	Files         []FileSubmission
}

type RejectedFile struct {
	FileName string
	Reason   string
}

type SubmitResult struct {
	Created   []entities.Order
	Rejected  []RejectedFile
	TotalCost float64
}

// Submit обрабатывает пакет строго последовательно: загрузка документа,
// затем вставка строки заказа, по одному файлу за раз. Невалидные файлы
// отклоняются поименно, не трогая соседей. Первый сбой загрузки или вставки
// прерывает цикл; уже созданные заказы остаются — отката пакета нет.
func (s *Order) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if !isValidCustomerName(req.CustomerName) {
		return nil, ErrMissingCustomerName
	}
	if !isValidPhone(req.Phone) {
		return nil, ErrMissingPhone
	}
	if len(req.Files) == 0 {
		return nil, ErrNoFiles
	}

	shop, err := s.shopService.ResolveByCode(ctx, req.ShopCode)
	if err != nil {
		return nil, fmt.Errorf("resolve shop: %w", err)
	}

	result := &SubmitResult{
		Created:  make([]entities.Order, 0, len(req.Files)),
		Rejected: make([]RejectedFile, 0),
	}

	accepted := make([]FileSubmission, 0, len(req.Files))
	for _, f := range req.Files {
		if err := validateFile(f); err != nil {
			result.Rejected = append(result.Rejected, RejectedFile{
				FileName: f.FileName,
				Reason:   err.Error(),
			})
			continue
		}
		accepted = append(accepted, f)
	}

	for _, f := range accepted {
		created, err := s.submitOne(ctx, shop, req, f)
		if err != nil {
			return result, fmt.Errorf("submit %s: %w", f.FileName, err)
		}
		result.Created = append(result.Created, *created)
		result.TotalCost += created.Cost()
	}

	return result, nil
}

func (s *Order) submitOne(ctx context.Context, shop *entities.Shop, req SubmitRequest, f FileSubmission) (*entities.Order, error) {
	fileURL, err := s.documents.Save(ctx, f.FileName, f.Content)
	if err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}

	now := time.Now().UTC()
	expiresAt := s.expiryFactory.ExpiresAt(now)

	customerName := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.Phone)
	status := entities.OrderNew

	orderModify := entities.OrderModify{
		ShopID:        &shop.ID,
		FileName:      &f.FileName,
		FileURL:       &fileURL,
		CustomerName:  &customerName,
		Phone:         &phone,
		Copies:        &f.Copies,
		ColorMode:     &f.ColorMode,
		Duplex:        &f.Duplex,
		PaperSize:     &req.PaperSize,
		Binding:       &req.Binding,
		Instructions:  &req.Instructions,
		PaymentMethod: &req.PaymentMethod,
		Status:        &status,
		ExpiresAt:     &expiresAt,
	}

	var created *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		if err := s.subscriptions.Create(ctx, created.ID, phone); err != nil {
			return fmt.Errorf("create completion subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// IsValidationError различает отказ валидации (400) и сбой шага (500).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingCustomerName) ||
		errors.Is(err, ErrMissingPhone) ||
		errors.Is(err, ErrNoFiles) ||
		errors.Is(err, ErrInvalidCopies) ||
		errors.Is(err, ErrInvalidColorMode) ||
		errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrFileTypeNotAllowed)
}
