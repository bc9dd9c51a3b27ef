//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"printshop/internal/docstore"
	"printshop/internal/handlers/rest/login_post"
	"printshop/internal/handlers/rest/order_cancel_delete"
	"printshop/internal/handlers/rest/order_delete"
	"printshop/internal/handlers/rest/order_status_put"
	"printshop/internal/handlers/rest/orders_get"
	"printshop/internal/handlers/rest/orders_post"
	"printshop/internal/handlers/rest/password_put"
	"printshop/internal/handlers/rest/password_reset_post"
	"printshop/internal/handlers/rest/payment_method_delete"
	"printshop/internal/handlers/rest/payment_method_post"
	"printshop/internal/handlers/rest/payment_methods_get"
	"printshop/internal/handlers/rest/register_post"
	"printshop/internal/handlers/rest/shop_get"
	"printshop/internal/handlers/rest/shop_put"
	"printshop/internal/handlers/rest/shop_resolve_get"
	"printshop/internal/handlers/tasks/order_cleanup"
	"printshop/internal/handlers/tasks/payment_confirm"
	"printshop/internal/pkg/config"
	"printshop/internal/pkg/factory/notification_handle"
	"printshop/internal/pkg/factory/order_expiry"
	"printshop/internal/pkg/kafka"
	"printshop/internal/realtime"

	operatorRepo "printshop/internal/repository/operator"
	orderRepo "printshop/internal/repository/order"
	paymentMethodRepo "printshop/internal/repository/paymentmethod"
	shopRepo "printshop/internal/repository/shop"
	subscriptionRepo "printshop/internal/repository/subscription"
	authService "printshop/internal/service/auth"
	billingService "printshop/internal/service/billing"
	notificationService "printshop/internal/service/notification"
	orderService "printshop/internal/service/order"
	shopService "printshop/internal/service/shop"

	"printshop/pkg/background"
	"printshop/pkg/logger"
	"printshop/pkg/querier"
	"printshop/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
	ConfirmInterval time.Duration
)

type Application struct {
	ServiceShop       ServiceShop
	ServiceOrder      ServiceOrder
	ServiceAuth       ServiceAuth
	ServiceBilling    ServiceBilling
	Documents         *docstore.Store
	Hub               *realtime.Hub
	BackgroundWorkers *background.Worker
}

type ServiceShop interface {
	shop_resolve_get.Service
	shop_get.Service
	shop_put.Service
}

type ServiceOrder interface {
	orders_post.Service
	orders_get.Service
	order_status_put.Service
	order_delete.Service
	order_cancel_delete.Service
}

type ServiceAuth interface {
	register_post.Service
	login_post.Service
	password_reset_post.Service
	password_put.Service
}

type ServiceBilling interface {
	payment_methods_get.Service
	payment_method_post.Service
	payment_method_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,

		provideShopRepository,
		provideOrderRepository,
		provideOperatorRepository,
		providePaymentMethodRepository,
		provideSubscriptionRepository,

		provideDocumentStore,
		provideHub,
		order_expiry.New,

		provideServiceShop,
		provideServiceOrder,
		provideServiceAuth,
		provideServiceBilling,

		provideOrderCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShop), new(*shopService.Shop)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceBilling), new(*billingService.Billing)),

		wire.Bind(new(shopService.Repository), new(*shopRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.SubscriptionRepository), new(*subscriptionRepo.Repository)),
		wire.Bind(new(orderService.ShopService), new(*shopService.Shop)),
		wire.Bind(new(orderService.DocumentStore), new(*docstore.Store)),
		wire.Bind(new(orderService.Publisher), new(*kafka.Producer)),
		wire.Bind(new(orderService.Broadcaster), new(*realtime.Hub)),
		wire.Bind(new(orderService.ExpiryFactory), new(*order_expiry.ExpiryTimeFactory)),
		wire.Bind(new(authService.OperatorRepository), new(*operatorRepo.Repository)),
		wire.Bind(new(authService.ShopService), new(*shopService.Shop)),
		wire.Bind(new(billingService.Repository), new(*paymentMethodRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(authService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_cleanup.Service), new(*orderService.Order)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Service
	BackgroundWorkers   *background.Worker
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideConfirmInterval,

		provideOrderRepository,
		providePaymentMethodRepository,
		provideSubscriptionRepository,

		provideStatusHandlerFactory,
		provideNotificationService,
		provideServiceBilling,

		providePaymentConfirmTask,
		provideWorkerTaskList,
		provideBackgroundWorkers,

		wire.Bind(new(notificationService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(notificationService.SubscriptionRepository), new(*subscriptionRepo.Repository)),
		wire.Bind(new(notificationService.HandlerFactory), new(*notification_handle.StatusHandlerFactory)),
		wire.Bind(new(billingService.Repository), new(*paymentMethodRepo.Repository)),
		wire.Bind(new(payment_confirm.Service), new(*billingService.Billing)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShopRepository(querier *querier.Querier) *shopRepo.Repository {
	return shopRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOperatorRepository(querier *querier.Querier) *operatorRepo.Repository {
	return operatorRepo.New(querier)
}

func providePaymentMethodRepository(querier *querier.Querier) *paymentMethodRepo.Repository {
	return paymentMethodRepo.New(querier)
}

func provideSubscriptionRepository(querier *querier.Querier) *subscriptionRepo.Repository {
	return subscriptionRepo.New(querier)
}

func provideDocumentStore(cfg *config.Config) (*docstore.Store, error) {
	return docstore.New(cfg.Storage.Root, cfg.Storage.BaseURL)
}

func provideHub(log logger.Logger) *realtime.Hub {
	return realtime.NewHub(log)
}

func provideServiceShop(repository shopService.Repository, cfg *config.Config) *shopService.Shop {
	return shopService.New(repository, cfg.Storage.UploadBase)
}

func provideServiceOrder(
	repository orderService.Repository,
	subscriptions orderService.SubscriptionRepository,
	shops orderService.ShopService,
	documents orderService.DocumentStore,
	publisher orderService.Publisher,
	broadcaster orderService.Broadcaster,
	expiryFactory orderService.ExpiryFactory,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(
		repository,
		subscriptions,
		shops,
		documents,
		publisher,
		broadcaster,
		expiryFactory,
		txManager,
	)
}

func provideServiceAuth(
	operators authService.OperatorRepository,
	shops authService.ShopService,
	txManager authService.TxManager,
	cfg *config.Config,
) *authService.Auth {
	return authService.New(operators, shops, txManager, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
}

func provideServiceBilling(repository billingService.Repository) *billingService.Billing {
	return billingService.New(repository)
}

func provideStatusHandlerFactory(subscriptions notificationService.SubscriptionRepository) *notification_handle.StatusHandlerFactory {
	return notification_handle.NewStatusHandlerFactory(subscriptions)
}

func provideNotificationService(
	orders notificationService.OrderRepository,
	handlerFactory notificationService.HandlerFactory,
) *notificationService.Service {
	return notificationService.New(orders, handlerFactory)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.OrderCleanupInterval)
}

func provideConfirmInterval(cfg *config.Config) ConfirmInterval {
	return ConfirmInterval(cfg.Tasks.PaymentConfirmInterval)
}

func provideOrderCleanupTask(
	log logger.Logger,
	orderService order_cleanup.Service,
	interval CleanupInterval,
) *order_cleanup.OrderCleanup {
	return order_cleanup.NewOrderCleanup(log, orderService, time.Duration(interval))
}

func providePaymentConfirmTask(
	log logger.Logger,
	billingService payment_confirm.Service,
	interval ConfirmInterval,
) *payment_confirm.PaymentConfirm {
	return payment_confirm.NewPaymentConfirm(log, billingService, time.Duration(interval))
}

func provideTaskList(
	orderCleanupTask *order_cleanup.OrderCleanup,
) []background.Task {
	return []background.Task{
		orderCleanupTask,
	}
}

func provideWorkerTaskList(
	paymentConfirmTask *payment_confirm.PaymentConfirm,
) []background.Task {
	return []background.Task{
		paymentConfirmTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
