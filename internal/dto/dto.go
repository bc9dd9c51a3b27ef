// Package dto содержит транспортные структуры REST API.
package dto

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Shop struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Code          string       `json:"code"`
	BWRate        float64      `json:"bw_rate"`
	ColorRate     float64      `json:"color_rate"`
	DuplexFactor  float64      `json:"duplex_factor"`
	RetentionDays int          `json:"retention_days"`
	AutoDelete    bool         `json:"auto_delete"`
	PrinterPrefs  PrinterPrefs `json:"printer_prefs"`
	UploadLink    string       `json:"upload_link,omitempty"`
}

type PrinterPrefs struct {
	ConnectionMethod string `json:"connection_method"`
	DefaultPaperSize string `json:"default_paper_size"`
	DefaultColorMode string `json:"default_color_mode"`
	Duplex           bool   `json:"duplex"`
}

type ShopResolveResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type ShopUpdate struct {
	Name          *string       `json:"name,omitempty"`
	BWRate        *float64      `json:"bw_rate,omitempty"`
	ColorRate     *float64      `json:"color_rate,omitempty"`
	DuplexFactor  *float64      `json:"duplex_factor,omitempty"`
	RetentionDays *int          `json:"retention_days,omitempty"`
	AutoDelete    *bool         `json:"auto_delete,omitempty"`
	PrinterPrefs  *PrinterPrefs `json:"printer_prefs,omitempty"`
}

type Order struct {
	ID            int64   `json:"id"`
	FileName      string  `json:"file_name"`
	FileURL       string  `json:"file_url"`
	CustomerName  string  `json:"customer_name"`
	Phone         string  `json:"phone"`
	Copies        int     `json:"copies"`
	ColorMode     string  `json:"color_mode"`
	Duplex        bool    `json:"duplex"`
	PaperSize     string  `json:"paper_size"`
	Binding       string  `json:"binding"`
	Instructions  string  `json:"instructions,omitempty"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	Cost          float64 `json:"cost"`
	CreatedAt     string  `json:"created_at"`
	ExpiresAt     string  `json:"expires_at"`
}

type RejectedFile struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

type OrdersSubmitResponse struct {
	Created   []Order        `json:"created"`
	Rejected  []RejectedFile `json:"rejected,omitempty"`
	TotalCost float64        `json:"total_cost"`
}

type Dashboard struct {
	Orders         []Order        `json:"orders"`
	Counts         map[string]int `json:"counts"`
	RevenueToday   float64        `json:"revenue_today"`
	PendingRevenue float64        `json:"pending_revenue"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	ShopName string `json:"shop_name"`
	ShopCode string `json:"shop_code"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordUpdate struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type PaymentMethod struct {
	ID     int64  `json:"id"`
	Kind   string `json:"kind"`
	Label  string `json:"label"`
	Status string `json:"status"`
}

type PaymentMethodCreate struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
}
