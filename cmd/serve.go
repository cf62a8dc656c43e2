package cmd

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rentease/ms-go-rent-payments/app/controller"
	"github.com/rentease/ms-go-rent-payments/app/events"
	"github.com/rentease/ms-go-rent-payments/app/gateway"
	paymentgrpc "github.com/rentease/ms-go-rent-payments/app/grpc"
	"github.com/rentease/ms-go-rent-payments/app/mapper"
	"github.com/rentease/ms-go-rent-payments/app/metrics"
	"github.com/rentease/ms-go-rent-payments/app/repository"
	"github.com/rentease/ms-go-rent-payments/app/service"
	"github.com/rentease/ms-go-rent-payments/app/types"
	"github.com/rentease/ms-go-rent-payments/app/view"
	"github.com/rentease/ms-go-rent-payments/config"
	authclient "github.com/vibast-solutions/lib-go-auth/client"
	authmiddleware "github.com/vibast-solutions/lib-go-auth/middleware"
	authlibservice "github.com/vibast-solutions/lib-go-auth/service"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	gp "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and gRPC servers",
	Long:  "Start both HTTP (Echo) and gRPC servers for the rent payments service.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type paymentDeps struct {
	cfg            *config.Config
	paymentService *service.PaymentService
	esewa          *gateway.EsewaGateway
}

func runServe(_ *cobra.Command, _ []string) {
	deps, cleanup := mustCreatePaymentService()
	defer cleanup()
	cfg := deps.cfg

	paymentController := controller.NewPaymentController(deps.paymentService, deps.esewa, cfg.Payments)
	grpcPaymentServer := paymentgrpc.NewServer(deps.paymentService, func(paymentID uint64) string {
		return mapper.SuccessDeepLink(cfg.Payments.AppDeepLink, paymentID)
	})

	authGRPCClient, err := authclient.NewGRPCClientFromAddr(context.Background(), cfg.InternalEndpoints.AuthGRPCAddr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize auth gRPC client")
	}
	defer authGRPCClient.Close()

	internalAuthService := authlibservice.NewInternalAuthService(authGRPCClient)
	echoInternalAuthMiddleware := authmiddleware.NewEchoInternalAuthMiddleware(internalAuthService)
	grpcInternalAuthMiddleware := authmiddleware.NewGRPCInternalAuthMiddleware(internalAuthService)

	e := setupHTTPServer(cfg, paymentController, echoInternalAuthMiddleware)
	grpcSrv, healthSrv, lis := setupGRPCServer(cfg, grpcPaymentServer, grpcInternalAuthMiddleware)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		logrus.WithField("addr", lis.Addr().String()).Info("Starting gRPC server")
		return grpcSrv.Serve(lis)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logrus.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		healthSrv.Shutdown()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("HTTP shutdown error")
		}
		grpcSrv.GracefulStop()
		return nil
	})

	if err := group.Wait(); err != nil {
		logrus.WithError(err).Error("Server error")
		return
	}
	logrus.Info("Server stopped")
}

func setupHTTPServer(
	cfg *config.Config,
	paymentController *controller.PaymentController,
	internalAuthMiddleware *authmiddleware.EchoInternalAuthMiddleware,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.MustNewRenderer()

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
				"request_id": v.RequestID,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(metrics.Middleware())

	e.GET("/health", paymentController.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// eSewa redirects the browser here, so these routes cannot rely on internal headers.
	esewa := e.Group("/api/esewa")
	esewa.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	esewa.Use(echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Payments.PublicRateLimit))))
	esewa.GET("/complete-payment", paymentController.CompletePayment)
	esewa.GET("/payment-failed", paymentController.PaymentFailed)
	esewa.POST("/payment-failed", paymentController.PaymentFailed)
	esewa.GET("/mobile-payment-bridge", paymentController.MobilePaymentBridge)

	payments := e.Group("/payments")
	payments.Use(requireRequestID())
	payments.Use(internalAuthMiddleware.RequireInternalAccess(cfg.App.ServiceName))
	payments.POST("", paymentController.InitiatePayment)
	payments.GET("", paymentController.ListPayments)
	payments.POST("/verify", paymentController.VerifyPayment)
	payments.POST("/failed", paymentController.RecordFailure)
	payments.GET("/:id", paymentController.GetPayment)

	return e
}

func requireRequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requestID := strings.TrimSpace(ctx.Request().Header.Get(echo.HeaderXRequestID))
			if requestID == "" {
				return ctx.JSON(http.StatusBadRequest, &types.ErrorResponse{Error: "x-request-id header is required", Code: "validation"})
			}
			ctx.Response().Header().Set(echo.HeaderXRequestID, requestID)
			return next(ctx)
		}
	}
}

func setupGRPCServer(
	cfg *config.Config,
	paymentServer *paymentgrpc.Server,
	internalAuthMiddleware *authmiddleware.GRPCInternalAuthMiddleware,
) (*grpc.Server, *health.Server, net.Listener) {
	grpcAddr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to listen on gRPC port")
	}

	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			paymentgrpc.RecoveryInterceptor(),
			gp.UnaryServerInterceptor,
			paymentgrpc.RequestIDInterceptor(),
			paymentgrpc.LoggingInterceptor(),
			internalAuthMiddleware.UnaryRequireInternalAccess(cfg.App.ServiceName),
		),
	)
	types.RegisterPaymentsServiceServer(grpcSrv, paymentServer)

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(types.PaymentsService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)

	gp.Register(grpcSrv)

	return grpcSrv, healthSrv, lis
}

func mustCreatePaymentService() (*paymentDeps, func()) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}
	if strings.TrimSpace(cfg.Esewa.SecretKey) == "" {
		logrus.Fatal("ESEWA_SECRET_KEY environment variable is required")
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	esewaGateway := gateway.NewEsewaGateway(gateway.EsewaConfig{
		SecretKey:   cfg.Esewa.SecretKey,
		ProductCode: cfg.Esewa.ProductCode,
		FormURL:     cfg.Esewa.FormURL,
		StatusURL:   cfg.Esewa.StatusURL,
		SuccessURL:  cfg.Payments.SuccessURL,
		FailureURL:  cfg.Payments.FailureURL,
		HTTPTimeout: cfg.Esewa.HTTPTimeout,
	})

	publisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.PaymentsTopic, cfg.Kafka.WriteTimeout)

	paymentService := service.NewPaymentService(
		repository.NewSQLStore(db),
		repository.NewSQLTxManager(db),
		gateway.NewRegistry(esewaGateway),
		publisher,
		cfg.Payments,
	)

	cleanup := func() {
		if err := publisher.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close event publisher")
		}
		if err := db.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}

	return &paymentDeps{cfg: cfg, paymentService: paymentService, esewa: esewaGateway}, cleanup
}
