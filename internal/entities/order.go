package entities

import "time"

type Order struct {
	ID            int64
	ShopID        int64
	FileName      string
	FileURL       string
	CustomerName  string
	Phone         string
	Copies        int
	ColorMode     ColorModeType
	Duplex        bool
	PaperSize     string
	Binding       string
	Instructions  string
	PaymentMethod string
	Status        OrderStatusType
	CreatedAt     time.Time
	ExpiresAt     time.Time
	DeletedAt     *time.Time
}

type OrderStatusType string

const (
	OrderNew       OrderStatusType = "new"
	OrderPrinting  OrderStatusType = "printing"
	OrderPrinted   OrderStatusType = "printed"
	OrderCompleted OrderStatusType = "completed"

	// OrderCancelled — виртуальный терминальный статус мягко удаленного
	// заказа; в колонке status не хранится и в таблице переходов не участвует.
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// EffectiveStatus нормализует статус: отсутствующее значение эквивалентно "new"
// во всех фильтрах и статистике.
func (s OrderStatusType) EffectiveStatus() OrderStatusType {
	if s == "" {
		return OrderNew
	}
	return s
}

// forwardTransitions — единственная таблица переходов жизненного цикла заказа.
// Переходы строго вперед и на один шаг; completed терминален.
var forwardTransitions = map[OrderStatusType]OrderStatusType{
	OrderNew:      OrderPrinting,
	OrderPrinting: OrderPrinted,
	OrderPrinted:  OrderCompleted,
}

// Next возвращает следующий статус жизненного цикла, если он есть.
func (s OrderStatusType) Next() (OrderStatusType, bool) {
	next, ok := forwardTransitions[s.EffectiveStatus()]
	return next, ok
}

func CanTransition(from, to OrderStatusType) bool {
	next, ok := forwardTransitions[from.EffectiveStatus()]
	return ok && next == to.EffectiveStatus()
}

type ColorModeType string

const (
	ColorModeBW    ColorModeType = "B&W"
	ColorModeColor ColorModeType = "Color"
)

const DefaultColorMode = ColorModeBW

func (c ColorModeType) String() string {
	return string(c)
}

// Ставки за страницу: документ считается одностраничным,
// извлечение реального числа страниц не реализовано.
const (
	RatePerPageBW    = 10.0
	RatePerPageColor = 20.0
	DuplexMultiplier = 1.5
)

// Cost считает стоимость заказа: copies × ставка(цветность) × 1.5 при дуплексе.
func (o *Order) Cost() float64 {
	rate := RatePerPageBW
	if o.ColorMode == ColorModeColor {
		rate = RatePerPageColor
	}
	cost := float64(o.Copies) * rate
	if o.Duplex {
		cost *= DuplexMultiplier
	}
	return cost
}

// IsLive: заказ виден магазину пока не удален мягко и не истек.
func (o *Order) IsLive(now time.Time) bool {
	return o.DeletedAt == nil && o.ExpiresAt.After(now)
}

func (o *Order) IsTerminal() bool {
	return o.DeletedAt != nil || o.Status.EffectiveStatus() == OrderCompleted
}

type OrderModify struct {
	ID            *int64
	ShopID        *int64
	FileName      *string
	FileURL       *string
	CustomerName  *string
	Phone         *string
	Copies        *int
	ColorMode     *ColorModeType
	Duplex        *bool
	PaperSize     *string
	Binding       *string
	Instructions  *string
	PaymentMethod *string
	Status        *OrderStatusType
	ExpiresAt     *time.Time
	DeletedAt     *time.Time
}
