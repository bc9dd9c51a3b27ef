package operator

import "printshop/internal/entities"

func ToDomain(o *OperatorDB) *entities.Operator {
	if o == nil {
		return nil
	}
	return &entities.Operator{
		ID:           o.ID,
		Email:        o.Email,
		PasswordHash: o.PasswordHash,
		CreatedAt:    o.CreatedAt,
	}
}
