package shop

import (
	"encoding/json"
	"fmt"

	"printshop/internal/entities"
)

func ToDomain(s *ShopDB) (*entities.Shop, error) {
	if s == nil {
		return nil, nil
	}

	shop := &entities.Shop{
		ID:            s.ID,
		OperatorID:    s.OperatorID,
		Name:          s.Name,
		Code:          s.Code,
		BWRate:        s.BWRate,
		ColorRate:     s.ColorRate,
		DuplexFactor:  s.DuplexFactor,
		RetentionDays: s.RetentionDays,
		AutoDelete:    s.AutoDelete,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}

	if len(s.PrinterPrefs) > 0 {
		if err := json.Unmarshal(s.PrinterPrefs, &shop.PrinterPrefs); err != nil {
			return nil, fmt.Errorf("decode printer prefs: %w", err)
		}
	}

	return shop, nil
}

func FromDomainModify(s *entities.ShopModify) (*ShopModifyDB, error) {
	if s == nil {
		return nil, nil
	}

	shopModifyDB := &ShopModifyDB{
		ID:            s.ID,
		Name:          s.Name,
		BWRate:        s.BWRate,
		ColorRate:     s.ColorRate,
		DuplexFactor:  s.DuplexFactor,
		RetentionDays: s.RetentionDays,
		AutoDelete:    s.AutoDelete,
	}

	if s.PrinterPrefs != nil {
		raw, err := json.Marshal(s.PrinterPrefs)
		if err != nil {
			return nil, fmt.Errorf("encode printer prefs: %w", err)
		}
		shopModifyDB.PrinterPrefs = raw
	}

	return shopModifyDB, nil
}
