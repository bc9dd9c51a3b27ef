package shop

import "time"

type ShopDB struct {
	ID            int64
	OperatorID    int64
	Name          string
	Code          string
	BWRate        float64
	ColorRate     float64
	DuplexFactor  float64
	RetentionDays int
	AutoDelete    bool
	PrinterPrefs  []byte
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ShopModifyDB struct {
	ID            *int64
	Name          *string
	BWRate        *float64
	ColorRate     *float64
	DuplexFactor  *float64
	RetentionDays *int
	AutoDelete    *bool
	PrinterPrefs  []byte
}
