package paymentmethod

import "printshop/internal/entities"

func ToDomain(m *PaymentMethodDB) *entities.PaymentMethod {
	if m == nil {
		return nil
	}
	return &entities.PaymentMethod{
		ID:        m.ID,
		ShopID:    m.ShopID,
		Kind:      entities.PaymentMethodKind(m.Kind),
		Label:     m.Label,
		Status:    entities.PaymentMethodStatus(m.Status),
		CreatedAt: m.CreatedAt,
		DeletedAt: m.DeletedAt,
	}
}

func ToDomainList(methods []PaymentMethodDB) []entities.PaymentMethod {
	result := make([]entities.PaymentMethod, 0, len(methods))
	for i := range methods {
		result = append(result, *ToDomain(&methods[i]))
	}
	return result
}
