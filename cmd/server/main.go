package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acme/dashboard/internal/application/actions"
	"github.com/acme/dashboard/internal/application/files"
	identityapp "github.com/acme/dashboard/internal/application/identity"
	"github.com/acme/dashboard/internal/infrastructure/auth"
	"github.com/acme/dashboard/internal/infrastructure/cache"
	"github.com/acme/dashboard/internal/infrastructure/config"
	"github.com/acme/dashboard/internal/infrastructure/logger"
	"github.com/acme/dashboard/internal/infrastructure/persistence"
	"github.com/acme/dashboard/internal/infrastructure/storage"
	"github.com/acme/dashboard/internal/interfaces/http/handler"
	"github.com/acme/dashboard/internal/interfaces/http/middleware"
	"github.com/acme/dashboard/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting dashboard backend",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Connect to the database
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// List cache (Redis with in-memory fallback outside production)
	cacheFactory := cache.NewListCacheFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(cfg.App.Env != "production"),
	)
	listCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to create list cache", zap.Error(err))
	}

	// Object storage for customer images
	var imageStorage files.ObjectStorage
	s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("Failed to create object storage", zap.Error(err))
		}
		log.Warn("Object storage unavailable, using in-memory storage", zap.Error(err))
		imageStorage = storage.NewMemoryObjectStorage()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			log.Warn("Failed to ensure storage bucket", zap.Error(err))
		}
		cancel()
		imageStorage = s3Storage
	}

	// Repositories
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Application services
	invoiceActions := actions.NewInvoiceActions(invoiceRepo, listCache, log)
	customerActions := actions.NewCustomerActions(customerRepo, listCache, log)
	authenticator := identityapp.NewAuthenticator(identityapp.NewUserVerifier(userRepo), log)
	uploadService := files.NewUploadService(imageStorage, log)
	jwtService := auth.NewJWTService(cfg.JWT)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}
	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		logger.GinMiddleware(log),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	// Routes
	r := router.NewRouter(engine, router.WithPrefix("/api"))
	r.Register(handler.NewInvoiceHandler(invoiceActions)).
		Register(handler.NewCustomerHandler(customerActions)).
		Register(handler.NewAuthHandler(authenticator, jwtService, cfg.Cookie)).
		Register(handler.NewFileHandler(uploadService))
	r.Setup()

	engine.GET("/api/health", healthHandler(db))

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
