package order

import "time"

type OrderDB struct {
	ID            int64
	ShopID        int64
	FileName      string
	FileURL       string
	CustomerName  string
	Phone         string
	Copies        int
	ColorMode     string
	Duplex        bool
	PaperSize     string
	Binding       string
	Instructions  string
	PaymentMethod string
	Status        string
	CreatedAt     time.Time
	ExpiresAt     time.Time
	DeletedAt     *time.Time
}

type OrderModifyDB struct {
	ID            *int64
	ShopID        *int64
	FileName      *string
	FileURL       *string
	CustomerName  *string
	Phone         *string
	Copies        *int
	ColorMode     *string
	Duplex        *bool
	PaperSize     *string
	Binding       *string
	Instructions  *string
	PaymentMethod *string
	Status        *string
	ExpiresAt     *time.Time
	DeletedAt     *time.Time
}
