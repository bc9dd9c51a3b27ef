package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "printshop/internal/app"
	"printshop/internal/handlers/rest/healthcheck_head"
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
	"printshop/internal/handlers/rest/ping_get"
	"printshop/internal/handlers/rest/register_post"
	"printshop/internal/handlers/rest/shop_get"
	"printshop/internal/handlers/rest/shop_put"
	"printshop/internal/handlers/rest/shop_resolve_get"
	"printshop/internal/handlers/rest/ws_get"
	"printshop/internal/pkg/config"
	"printshop/internal/pkg/dotenv"
	"printshop/internal/pkg/kafka"
	metrics_system "printshop/internal/pkg/metrics"
	authmw "printshop/internal/pkg/middlewares/auth"
	"printshop/internal/pkg/middlewares/graceful_shutdown"
	"printshop/internal/pkg/middlewares/metrics"
	"printshop/internal/pkg/middlewares/rate_limiter"
	"printshop/internal/pkg/middlewares/timeout"
	"printshop/internal/pkg/postgres"
	"printshop/pkg/logger"
	"printshop/pkg/logger/zap_adapter"
	"printshop/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting printshop application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	producer, err := kafka.NewProducer(log, cfg.Kafka.Sarama.Version, strings.Split(cfg.Kafka.Brokers, ","), cfg.Kafka.Topic)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// хаб realtime-подписок живет, пока обслуживаются соединения
	go businessApp.Hub.Run(ongoingCtx)

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       60 * time.Second, // multipart-загрузки до 50MB
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// клиентские маршруты: без токена, клиент идентифицируется телефоном
	router.Handle("/shop/resolve", shop_resolve_get.New(log, app.ServiceShop)).Methods("GET")
	router.Handle("/orders", orders_post.New(log, app.ServiceOrder)).Methods("POST")
	router.Handle("/orders/{id}", order_cancel_delete.New(log, app.ServiceOrder)).
		Methods("DELETE").
		Queries("phone", "{phone}")
	router.Handle("/ws", ws_get.New(log, app.Hub)).Methods("GET")

	// загруженные документы раздаются как статика
	router.PathPrefix("/documents/").Handler(
		http.StripPrefix("/documents/", http.FileServer(http.Dir(app.Documents.Root()))),
	).Methods("GET")

	router.Handle("/auth/register", register_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/auth/login", login_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/auth/password-reset", password_reset_post.New(log, app.ServiceAuth)).Methods("POST")

	// операторские маршруты за JWT
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(authmw.Middleware([]byte(cfg.Auth.JWTSecret)))

	protected.Handle("/orders", orders_get.New(log, app.ServiceShop, app.ServiceOrder)).Methods("GET")
	protected.Handle("/orders/{id}/status", order_status_put.New(log, app.ServiceShop, app.ServiceOrder)).Methods("PUT")
	protected.Handle("/orders/{id}", order_delete.New(log, app.ServiceShop, app.ServiceOrder)).Methods("DELETE")

	protected.Handle("/shop", shop_get.New(log, app.ServiceShop)).Methods("GET")
	protected.Handle("/shop", shop_put.New(log, app.ServiceShop)).Methods("PUT")

	protected.Handle("/auth/password", password_put.New(log, app.ServiceAuth)).Methods("PUT")

	protected.Handle("/payment-methods", payment_methods_get.New(log, app.ServiceShop, app.ServiceBilling)).Methods("GET")
	protected.Handle("/payment-methods", payment_method_post.New(log, app.ServiceShop, app.ServiceBilling)).Methods("POST")
	protected.Handle("/payment-methods/{id}", payment_method_delete.New(log, app.ServiceShop, app.ServiceBilling)).Methods("DELETE")

	// страница загрузки и панель оператора живут на своих origin
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	return corsHandler(router)
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
