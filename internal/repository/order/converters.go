package order

import (
	"github.com/AlekSi/pointer"
	"printshop/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:            o.ID,
		ShopID:        o.ShopID,
		FileName:      o.FileName,
		FileURL:       o.FileURL,
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		Copies:        o.Copies,
		ColorMode:     entities.ColorModeType(o.ColorMode),
		Duplex:        o.Duplex,
		PaperSize:     o.PaperSize,
		Binding:       o.Binding,
		Instructions:  o.Instructions,
		PaymentMethod: o.PaymentMethod,
		Status:        entities.OrderStatusType(o.Status),
		CreatedAt:     o.CreatedAt,
		ExpiresAt:     o.ExpiresAt,
		DeletedAt:     o.DeletedAt,
	}
}

func ToDomainList(orders []OrderDB) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for i := range orders {
		result = append(result, *ToDomain(&orders[i]))
	}
	return result
}

func FromDomainModify(o *entities.OrderModify) *OrderModifyDB {
	if o == nil {
		return nil
	}
	orderModifyDB := &OrderModifyDB{
		ID:            o.ID,
		ShopID:        o.ShopID,
		FileName:      o.FileName,
		FileURL:       o.FileURL,
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		Copies:        o.Copies,
		Duplex:        o.Duplex,
		PaperSize:     o.PaperSize,
		Binding:       o.Binding,
		Instructions:  o.Instructions,
		PaymentMethod: o.PaymentMethod,
		ExpiresAt:     o.ExpiresAt,
		DeletedAt:     o.DeletedAt,
	}

	if o.ColorMode != nil {
		orderModifyDB.ColorMode = pointer.ToString(o.ColorMode.String())
	}
	if o.Status != nil {
		orderModifyDB.Status = pointer.ToString(o.Status.String())
	}

	return orderModifyDB
}
