package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	classificationapp "github.com/mdm/backend/internal/application/classification"
	masterdataapp "github.com/mdm/backend/internal/application/masterdata"
	"github.com/mdm/backend/internal/infrastructure/cache"
	"github.com/mdm/backend/internal/infrastructure/config"
	"github.com/mdm/backend/internal/infrastructure/logger"
	"github.com/mdm/backend/internal/infrastructure/persistence"
	"github.com/mdm/backend/internal/interfaces/http/handler"
	"github.com/mdm/backend/internal/interfaces/http/middleware"
	"github.com/mdm/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting MDM Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Segment cache: Redis when reachable, in-memory otherwise
	cacheFactory := cache.NewSegmentCacheFactory(cfg.Redis, cfg.Cache, cache.WithLogger(log))
	segmentCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to create segment cache", zap.Error(err))
	}
	defer func() {
		if err := segmentCache.Close(); err != nil {
			log.Error("Error closing segment cache", zap.Error(err))
		}
	}()

	// Repositories
	axisRepo := persistence.NewGormCategoryAxisRepository(db.DB)
	segmentRepo := persistence.NewGormSegmentRepository(db.DB)
	assignmentRepo := persistence.NewGormSegmentAssignmentRepository(db.DB)
	bankRepo := persistence.NewGormBankRepository(db.DB)
	branchRepo := persistence.NewGormBranchRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	accountRepo := persistence.NewGormPayeeBankAccountRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	shipToRepo := persistence.NewGormShipToRepository(db.DB)
	taxCodeRepo := persistence.NewGormTaxCodeRepository(db.DB)

	// Application services
	axisService := classificationapp.NewCategoryAxisService(axisRepo)
	segmentService := classificationapp.NewSegmentService(axisRepo, segmentRepo, segmentCache, log)
	assignmentService := classificationapp.NewSegmentAssignmentService(axisRepo, segmentRepo, assignmentRepo)
	bankService := masterdataapp.NewBankService(bankRepo)
	branchService := masterdataapp.NewBranchService(branchRepo, bankRepo)
	warehouseService := masterdataapp.NewWarehouseService(warehouseRepo)
	accountService := masterdataapp.NewPayeeBankAccountService(accountRepo, bankRepo, branchRepo)
	projectService := masterdataapp.NewProjectService(projectRepo)
	employeeService := masterdataapp.NewEmployeeService(employeeRepo)
	shipToService := masterdataapp.NewShipToService(shipToRepo)
	taxCodeService := masterdataapp.NewTaxCodeService(taxCodeRepo)

	// HTTP handlers
	axisHandler := handler.NewCategoryAxisHandler(axisService)
	segmentHandler := handler.NewSegmentHandler(segmentService)
	assignmentHandler := handler.NewSegmentAssignmentHandler(assignmentService)
	bankHandler := handler.NewBankHandler(bankService)
	branchHandler := handler.NewBranchHandler(branchService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseService)
	accountHandler := handler.NewPayeeBankAccountHandler(accountService)
	projectHandler := handler.NewProjectHandler(projectService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	shipToHandler := handler.NewShipToHandler(shipToService)
	taxCodeHandler := handler.NewTaxCodeHandler(taxCodeService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	tenantConfig := middleware.DefaultTenantConfig()
	tenantConfig.Logger = log
	engine.Use(middleware.TenantMiddlewareWithConfig(tenantConfig))

	engine.GET("/health", healthHandler(db, log))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(axisHandler)
	r.Register(segmentHandler)
	r.Register(assignmentHandler)
	r.Register(bankHandler)
	r.Register(branchHandler)
	r.Register(warehouseHandler)
	r.Register(accountHandler)
	r.Register(projectHandler)
	r.Register(employeeHandler)
	r.Register(shipToHandler)
	r.Register(taxCodeHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			log.Error("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
