package order

import (
	"context"
	"fmt"
	"time"

	"printshop/internal/entities"
	"printshop/internal/events"
)

type Order struct {
	repository    Repository
	subscriptions SubscriptionRepository
	shopService   ShopService
	documents     DocumentStore
	publisher     Publisher
	broadcaster   Broadcaster
	expiryFactory ExpiryFactory
	txManager     TxManager
}

func New(
	repository Repository,
	subscriptions SubscriptionRepository,
	shopService ShopService,
	documents DocumentStore,
	publisher Publisher,
	broadcaster Broadcaster,
	expiryFactory ExpiryFactory,
	txManager TxManager,
) *Order {
	return &Order{
		repository:    repository,
		subscriptions: subscriptions,
		shopService:   shopService,
		documents:     documents,
		publisher:     publisher,
		broadcaster:   broadcaster,
		expiryFactory: expiryFactory,
		txManager:     txManager,
	}
}

// Dashboard — срез заказов магазина для панели оператора.
type Dashboard struct {
	Orders         []entities.Order
	Counts         map[entities.OrderStatusType]int
	RevenueToday   float64
	PendingRevenue float64
}

// GetDashboard возвращает живые (не удаленные, не истекшие) заказы магазина,
// новые первыми. statusFilter сужает список до одной вкладки; счетчики и
// выручка всегда считаются по всем живым заказам той же формулой стоимости —
// отдельного журнала выручки нет.
func (s *Order) GetDashboard(ctx context.Context, shopID int64, statusFilter *entities.OrderStatusType) (*Dashboard, error) {
	now := time.Now().UTC()

	orders, err := s.repository.ListLiveByShop(ctx, shopID, now)
	if err != nil {
		return nil, fmt.Errorf("list shop orders: %w", err)
	}

	dashboard := &Dashboard{
		Orders: make([]entities.Order, 0, len(orders)),
		Counts: map[entities.OrderStatusType]int{
			entities.OrderNew:       0,
			entities.OrderPrinting:  0,
			entities.OrderPrinted:   0,
			entities.OrderCompleted: 0,
		},
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for _, o := range orders {
		status := o.Status.EffectiveStatus()
		dashboard.Counts[status]++

		if !o.CreatedAt.Before(startOfDay) {
			dashboard.RevenueToday += o.Cost()
		}
		if status != entities.OrderCompleted {
			dashboard.PendingRevenue += o.Cost()
		}

		if statusFilter == nil || status == statusFilter.EffectiveStatus() {
			dashboard.Orders = append(dashboard.Orders, o)
		}
	}

	return dashboard, nil
}

// Transition — единственная точка валидации машины статусов: переходы
// только вперед и на один шаг (new → printing → printed → completed).
// Последний пишущий побеждает, конфликтов между вкладками не отслеживаем.
func (s *Order) Transition(ctx context.Context, shopID, orderID int64, to entities.OrderStatusType) (*entities.Order, error) {
	if !isValidStatusValue(to) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, to)
	}

	current, err := s.visibleOrder(ctx, shopID, orderID)
	if err != nil {
		return nil, err
	}

	if !entities.CanTransition(current.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s",
			ErrInvalidTransition, current.Status.EffectiveStatus(), to)
	}

	if err := s.repository.UpdateStatus(ctx, orderID, to); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	current.Status = to

	s.notify(ctx, current, false)
	return current, nil
}

// CancelByShop — мягкое удаление заказа оператором; доступно из любого
// состояния и терминально.
func (s *Order) CancelByShop(ctx context.Context, shopID, orderID int64) error {
	current, err := s.visibleOrder(ctx, shopID, orderID)
	if err != nil {
		return err
	}
	return s.softDelete(ctx, current)
}

// CancelByCustomer — удаление заказа клиентом из уведомления о готовности;
// вместо токена клиента идентифицирует телефон заказа.
func (s *Order) CancelByCustomer(ctx context.Context, orderID int64, phone string) error {
	if !isValidPhone(phone) {
		return ErrMissingPhone
	}

	current, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if current.Phone != phone || !current.IsLive(time.Now().UTC()) {
		return ErrOrderNotFound
	}
	return s.softDelete(ctx, current)
}

// CleanupExpired мягко удаляет истекшие заказы магазинов с включенным
// автоудалением. Вызывается фоновой задачей.
func (s *Order) CleanupExpired(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.SoftDeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("cleanup expired orders: %w", err)
	}
	return rowsAffected, nil
}

func (s *Order) softDelete(ctx context.Context, current *entities.Order) error {
	deletedAt := time.Now().UTC()
	if err := s.repository.SoftDelete(ctx, current.ID, deletedAt); err != nil {
		return fmt.Errorf("soft delete order: %w", err)
	}
	current.DeletedAt = &deletedAt

	s.notify(ctx, current, true)
	return nil
}

// visibleOrder возвращает заказ, если он принадлежит магазину и жив.
// Чужие и невидимые заказы неотличимы от несуществующих.
func (s *Order) visibleOrder(ctx context.Context, shopID, orderID int64) (*entities.Order, error) {
	current, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if current.ShopID != shopID || !current.IsLive(time.Now().UTC()) {
		return nil, ErrOrderNotFound
	}
	return current, nil
}

func (s *Order) notify(ctx context.Context, o *entities.Order, cancelled bool) {
	ev := events.OrderStatusChanged{
		OrderID:    o.ID,
		ShopID:     o.ShopID,
		Phone:      o.Phone,
		Status:     o.Status.EffectiveStatus().String(),
		Cancelled:  cancelled,
		OccurredAt: time.Now().UTC(),
	}
	s.publisher.PublishOrderStatusChanged(ctx, ev)
	s.broadcaster.BroadcastOrderEvent(ev)
}

func isValidStatusValue(status entities.OrderStatusType) bool {
	switch status.EffectiveStatus() {
	case entities.OrderNew, entities.OrderPrinting, entities.OrderPrinted, entities.OrderCompleted:
		return true
	default:
		return false
	}
}
