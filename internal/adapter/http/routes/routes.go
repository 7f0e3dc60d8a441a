package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "productivity_api/docs"
	"productivity_api/internal/adapter/http/handlers"
	"productivity_api/internal/adapter/http/middleware"
	"productivity_api/internal/adapter/persistence/repository"
	"productivity_api/internal/infrastructure/config"
	"productivity_api/internal/infrastructure/database"
	"productivity_api/internal/infrastructure/events"
	"productivity_api/internal/infrastructure/logger"
	"productivity_api/internal/infrastructure/observability"
	"productivity_api/internal/usecase"
	"productivity_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Config          *config.Config
	Log             *logger.Logger
	ShoppingUseCase usecase.IShoppingListUseCase
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, cfg, appLog)
	if err != nil {
		appLog.Fatal("Failed to init tracing", "error", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			appLog.Warn("tracer shutdown failed", "error", err)
		}
	}()

	shoppingUseCase, closeDeps, err := buildShoppingUseCase(ctx, cfg, appLog)
	if err != nil {
		appLog.Fatal("Failed to startup the application", "error", err)
	}
	defer closeDeps()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(Deps{Config: cfg, Log: appLog, ShoppingUseCase: shoppingUseCase})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		appLog.Info("HTTP server listening", "addr", srv.Addr, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Failed to startup the application", "error", err)
		}
	}()

	<-ctx.Done()
	appLog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("HTTP server shutdown failed", "error", err)
	}
}

// NewRouter wires middlewares, swagger and the /v1 routes.
func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Authenticated routes
	authed := v1.Group("")
	authed.Use(middleware.Auth(deps.Config.AccessTokenSecret, deps.Log))
	addShoppingRoutes(authed, handlers.NewShoppingListHandler(deps.ShoppingUseCase))

	return router
}

func setMiddlewares(router *gin.Engine, deps Deps) {
	router.Use(otelgin.Middleware(deps.Config.OTelServiceName))
	router.Use(middleware.RequestLogger(deps.Log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		deps.Log.Error("Recovered from panic", "panic", fmt.Sprint(recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS(deps.Config.CORSAllowedOrigins))
}

func buildShoppingUseCase(ctx context.Context, cfg *config.Config, appLog *logger.Logger) (usecase.IShoppingListUseCase, func(), error) {
	closers := []func(){}
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	var repo interfaces.IShoppingListRepository
	switch cfg.StorageDriver {
	case config.StorageMemory:
		appLog.Warn("using in-memory shopping list storage, data is lost on restart")
		repo = repository.NewShoppingListMemoryRepository()
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, closeAll, fmt.Errorf("connect dynamodb: %w", err)
		}
		repo = repository.NewShoppingListDynamoRepository(ddb, cfg.ShoppingListsTable)
	}

	var publisher interfaces.IShoppingListEventPublisher
	if cfg.RedisAddr != "" {
		p, err := events.NewRedisPublisher(ctx, cfg.RedisAddr, cfg.RedisChannel, appLog)
		if err != nil {
			appLog.Warn("shopping events disabled", "error", err)
		} else {
			publisher = p
			closers = append(closers, func() { _ = p.Close() })
		}
	}

	return usecase.NewShoppingListUseCase(repo, publisher, appLog, cfg.ConflictRetries), closeAll, nil
}
