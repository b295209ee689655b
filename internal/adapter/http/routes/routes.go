package routes

import (
	"context"
	"log"
	"strconv"
	"time"

	_ "quotedesk/docs" // swagger docs registration
	"quotedesk/internal/adapter/http/handlers"
	"quotedesk/internal/adapter/persistence/repository"
	"quotedesk/internal/infrastructure/clock"
	"quotedesk/internal/infrastructure/config"
	"quotedesk/internal/infrastructure/database"
	"quotedesk/internal/infrastructure/documents"
	"quotedesk/internal/infrastructure/logger"
	"quotedesk/internal/infrastructure/payments"
	"quotedesk/internal/usecase"
	"quotedesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	setMiddlewares(zl)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), cfg, zl); err != nil {
		zl.Fatal("[app][routes] startup failed", zap.Error(err))
	}

	zl.Info("[app][routes] listening", zap.Int("port", cfg.Port))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		zl.Fatal("Failed to startup the application", zap.Error(err))
	}
}

type stores struct {
	kv          interfaces.IKeyValueStore
	invitations interfaces.IInvitationRepository
	payments    interfaces.IPaymentRecordRepository
}

func buildStores(ctx context.Context, cfg config.Config, zl *zap.Logger) (stores, error) {
	var s stores

	if cfg.StoreBackend == config.BackendDynamoDB ||
		cfg.InvitationBackend == config.BackendDynamoDB ||
		cfg.PaymentBackend == config.BackendDynamoDB {
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return s, err
		}
		if cfg.StoreBackend == config.BackendDynamoDB {
			s.kv = repository.NewKeyValueDynamoRepository(ddb, cfg.KVTable, cfg.KVNamespace)
		}
		if cfg.InvitationBackend == config.BackendDynamoDB {
			s.invitations = repository.NewInvitationDynamoRepository(ddb, cfg.InvitationsTable)
		}
		if cfg.PaymentBackend == config.BackendDynamoDB {
			s.payments = repository.NewPaymentRecordDynamoRepository(ddb, cfg.PaymentsTable)
		}
	}

	if cfg.StoreBackend == config.BackendRedis {
		rdb, err := database.ConnectRedis(ctx, cfg)
		if err != nil {
			return s, err
		}
		s.kv = repository.NewKeyValueRedisRepository(rdb, cfg.KVNamespace)
	}

	if s.kv == nil {
		s.kv = repository.NewKeyValueMemoryRepository()
	}
	if s.invitations == nil {
		if cfg.InvitationBackend == config.BackendRedis {
			zl.Warn("[app][routes] redis has no invitation repository, using memory")
		}
		s.invitations = repository.NewInvitationMemoryRepository()
	}
	if s.payments == nil {
		s.payments = repository.NewPaymentRecordMemoryRepository()
	}

	zl.Info("[app][routes] stores ready",
		zap.String("store_backend", cfg.StoreBackend),
		zap.String("invitation_backend", cfg.InvitationBackend),
		zap.String("payment_backend", cfg.PaymentBackend),
	)
	return s, nil
}

func getRoutes(ctx context.Context, cfg config.Config, zl *zap.Logger) error {
	s, err := buildStores(ctx, cfg, zl)
	if err != nil {
		return err
	}

	clk := clock.System{}
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			zl.Warn("[app][routes] unknown timezone, using local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		} else {
			clk.Location = loc
		}
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, zl)
	if err != nil {
		zl.Warn("[app][routes] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	state := usecase.NewAppState()
	store := usecase.NewQuoteStore(s.kv, zl)
	if err := store.Load(ctx); err != nil {
		zl.Warn("[app][routes] quotes not restored", zap.Error(err))
	}

	profileUseCase := usecase.NewProfileUseCase(state, s.kv, clk, zl)
	if err := profileUseCase.Load(ctx); err != nil {
		zl.Warn("[app][routes] profiles not restored", zap.Error(err))
	}

	quoteUseCase := usecase.NewQuoteUseCase(store, clk, zl)
	reportUseCase := usecase.NewReportUseCase(store, clk, zl)
	documentUseCase := usecase.NewDocumentUseCase(quoteUseCase, reportUseCase, state, documents.NewPDFRenderer(cfg.Currency), zl)
	paymentUseCase := usecase.NewQuotePaymentUseCase(store, paymentGateway, s.payments, clk, zl)
	invitationUseCase := usecase.NewInvitationUseCase(s.invitations, s.kv, state, profileUseCase, clk, zl)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, documentUseCase)
	quotePaymentHandler := handlers.NewQuotePaymentHandler(paymentUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase, documentUseCase)
	invitationHandler := handlers.NewInvitationHandler(invitationUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase, quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, quotePaymentHandler)
	addReportRoutes(v1, reportHandler)
	addTeamRoutes(v1, invitationHandler)
	addProfileRoutes(v1, profileHandler)
	return nil
}

func setMiddlewares(zl *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zl.Error("[app][routes] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}
