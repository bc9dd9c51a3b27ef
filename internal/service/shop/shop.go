package shop

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"printshop/internal/entities"
)

type Shop struct {
	repository Repository
	uploadBase string
}

// New создает сервис магазинов. uploadBase — адрес страницы загрузки,
// к нему добавляется ?code= для ссылки/QR.
func New(repository Repository, uploadBase string) *Shop {
	return &Shop{
		repository: repository,
		uploadBase: strings.TrimRight(uploadBase, "/"),
	}
}

// ResolveByCode — точное совпадение кода. Пустой ввод отклоняется
// до обращения к хранилищу. Повторный вызов с тем же кодом идемпотентен.
func (s *Shop) ResolveByCode(ctx context.Context, code string) (*entities.Shop, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	shop, err := s.repository.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("resolve shop code: %w", err)
	}
	return shop, nil
}

func (s *Shop) CreateShop(ctx context.Context, operatorID int64, name, code string) (*entities.Shop, error) {
	if !isValidName(name) {
		return nil, ErrInvalidName
	}
	if !isValidCode(code) {
		return nil, ErrInvalidCode
	}

	shop, err := s.repository.Create(ctx, operatorID, strings.TrimSpace(name), code)
	if err != nil {
		return nil, fmt.Errorf("create shop: %w", err)
	}
	return shop, nil
}

// GetByOperator возвращает единственный магазин оператора.
// ErrShopNotFound означает потерю привязки аккаунта и трактуется
// обработчиками как принудительный выход.
func (s *Shop) GetByOperator(ctx context.Context, operatorID int64) (*entities.Shop, error) {
	shop, err := s.repository.GetByOperator(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("get shop by operator: %w", err)
	}
	return shop, nil
}

// UpdateSettings обновляет строку магазина оператора.
// ID, код и email неизменяемы: ShopModify их не содержит, ID подставляется
// из найденной строки.
func (s *Shop) UpdateSettings(ctx context.Context, operatorID int64, shopModify entities.ShopModify) (*entities.Shop, error) {
	if shopModify.Name == nil &&
		shopModify.BWRate == nil &&
		shopModify.ColorRate == nil &&
		shopModify.DuplexFactor == nil &&
		shopModify.RetentionDays == nil &&
		shopModify.AutoDelete == nil &&
		shopModify.PrinterPrefs == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if shopModify.Name != nil && !isValidName(*shopModify.Name) {
		return nil, ErrInvalidName
	}
	if shopModify.BWRate != nil && *shopModify.BWRate < 0 {
		return nil, ErrInvalidRate
	}
	if shopModify.ColorRate != nil && *shopModify.ColorRate < 0 {
		return nil, ErrInvalidRate
	}
	if shopModify.DuplexFactor != nil && *shopModify.DuplexFactor < 1 {
		return nil, ErrInvalidRate
	}
	if shopModify.RetentionDays != nil && *shopModify.RetentionDays < 1 {
		return nil, ErrInvalidRetention
	}

	current, err := s.repository.GetByOperator(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("get shop for update: %w", err)
	}
	shopModify.ID = &current.ID

	updated, err := s.repository.Update(ctx, shopModify)
	if err != nil {
		return nil, fmt.Errorf("update shop settings: %w", err)
	}
	return updated, nil
}

// UploadLink строит разделяемую ссылку страницы загрузки с кодом магазина.
// Сам QR рисует клиент.
func (s *Shop) UploadLink(code string) string {
	return s.uploadBase + "/upload?code=" + url.QueryEscape(code)
}
