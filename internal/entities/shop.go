package entities

import "time"

type Shop struct {
	ID            int64
	OperatorID    int64
	Name          string
	Code          string
	BWRate        float64
	ColorRate     float64
	DuplexFactor  float64
	RetentionDays int
	AutoDelete    bool
	PrinterPrefs  PrinterPrefs
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PrinterPrefs — настройки принтера по умолчанию, редактируются в панели
// настроек и хранятся одним jsonb-полем на строке магазина.
type PrinterPrefs struct {
	ConnectionMethod string        `json:"connection_method"`
	DefaultPaperSize string        `json:"default_paper_size"`
	DefaultColorMode ColorModeType `json:"default_color_mode"`
	Duplex           bool          `json:"duplex"`
}

// ShopModify: опциональные поля обновления.
// ID, Code и email оператора неизменяемы и здесь отсутствуют намеренно.
type ShopModify struct {
	ID            *int64
	Name          *string
	BWRate        *float64
	ColorRate     *float64
	DuplexFactor  *float64
	RetentionDays *int
	AutoDelete    *bool
	PrinterPrefs  *PrinterPrefs
}

const (
	DefaultRetentionDays = 1
	DefaultPaperSize     = "A4"
)
