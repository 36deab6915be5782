package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	batchapp "github.com/cosmo/backend/internal/application/batch"
	catalogapp "github.com/cosmo/backend/internal/application/catalog"
	materialapp "github.com/cosmo/backend/internal/application/material"
	"github.com/cosmo/backend/internal/application/pricing"
	recipeapp "github.com/cosmo/backend/internal/application/recipe"
	supplierapp "github.com/cosmo/backend/internal/application/supplier"
	"github.com/cosmo/backend/internal/infrastructure/config"
	"github.com/cosmo/backend/internal/infrastructure/event"
	"github.com/cosmo/backend/internal/infrastructure/logger"
	"github.com/cosmo/backend/internal/infrastructure/persistence"
	"github.com/cosmo/backend/internal/interfaces/http/handler"
	"github.com/cosmo/backend/internal/interfaces/http/middleware"
	"github.com/cosmo/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting batch costing backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	rawMaterialRepo := persistence.NewGormRawMaterialRepository(db.DB)
	manualPriceRepo := persistence.NewGormManualPriceRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	offerRepo := persistence.NewGormOfferRepository(db.DB)
	offerPriceRepo := persistence.NewGormOfferPriceRepository(db.DB)
	defaultOfferRepo := persistence.NewGormDefaultOfferRepository(db.DB)
	recipeRepo := persistence.NewGormRecipeRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	templateRepo := persistence.NewGormBatchTemplateRepository(db.DB)
	batchRepo := persistence.NewGormBatchRepository(db.DB)
	selectionRepo := persistence.NewGormSelectionRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewBatchActivityLogger(log))

	// Pricing chain: batch-aware offer tier first, manual fallback second
	priceChain := pricing.NewChain(
		pricing.NewOfferTier(selectionRepo, defaultOfferRepo, offerRepo, offerPriceRepo),
		pricing.NewManualTier(manualPriceRepo),
	)

	// Initialize application services
	materialService := materialapp.NewRawMaterialService(rawMaterialRepo, manualPriceRepo)
	supplierService := supplierapp.NewSupplierService(supplierRepo)
	offerService := supplierapp.NewOfferService(offerRepo, offerPriceRepo, defaultOfferRepo, supplierRepo)
	recipeService := recipeapp.NewRecipeService(recipeRepo, rawMaterialRepo)
	productService := catalogapp.NewProductService(productRepo, recipeRepo)
	templateService := batchapp.NewTemplateService(templateRepo, productRepo)
	batchService := batchapp.NewBatchService(batchRepo, templateRepo, txScope, eventBus)
	costingService := batchapp.NewCostingService(batchRepo, templateRepo, productRepo, recipeRepo, priceChain)
	batchSupplierService := batchapp.NewBatchSupplierService(
		batchRepo, templateRepo, productRepo, recipeRepo,
		rawMaterialRepo, supplierRepo, offerRepo, defaultOfferRepo,
		selectionRepo, txScope,
	)

	// Initialize HTTP handlers
	rawMaterialHandler := handler.NewRawMaterialHandler(materialService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	offerHandler := handler.NewOfferHandler(offerService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	productHandler := handler.NewProductHandler(productService)
	templateHandler := handler.NewBatchTemplateHandler(templateService)
	batchHandler := handler.NewBatchHandler(batchService, costingService, batchSupplierService)
	systemHandler := handler.NewSystemHandler(db, version)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	metrics := middleware.NewHTTPMetrics(cfg.App.Name)

	// Middleware stack: request ID first so recovery and logging can tag
	// their output, metrics last so it observes the final status.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(metrics.Middleware())

	// Operational endpoints outside API versioning
	engine.GET("/metrics", metrics.Handler())
	systemHandler.RegisterRoutes(&engine.RouterGroup)

	// API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(rawMaterialHandler).
		Register(supplierHandler).
		Register(offerHandler).
		Register(recipeHandler).
		Register(productHandler).
		Register(templateHandler).
		Register(batchHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
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
