package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vendor_risk_backend/internal/config"
	"vendor_risk_backend/internal/controller"
	"vendor_risk_backend/internal/repository"
	"vendor_risk_backend/internal/service"
	"vendor_risk_backend/internal/util"
	"vendor_risk_backend/pkg/configwatcher"
	"vendor_risk_backend/pkg/database"
	"vendor_risk_backend/pkg/logger"
	"vendor_risk_backend/pkg/monitoring"
	"vendor_risk_backend/pkg/security"
	"vendor_risk_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	vendor     *repository.VendorRepository
	template   *repository.TemplateRepository
	assessment *repository.AssessmentRepository
	dashboard  *repository.DashboardRepository
}

type services struct {
	mail       *service.MailService
	storage    *service.StorageService
	auth       *service.AuthService
	vendor     *service.VendorService
	template   *service.TemplateService
	assessment *service.AssessmentService
	document   *service.DocumentService
	dashboard  *service.DashboardService
}

type controllers struct {
	auth       *controller.AuthController
	vendor     *controller.VendorController
	template   *controller.TemplateController
	assessment *controller.AssessmentController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		vendor:     repository.NewVendorRepository(db),
		template:   repository.NewTemplateRepository(db),
		assessment: repository.NewAssessmentRepository(db),
		dashboard:  repository.NewDashboardRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.mail = service.NewMailService(cfg, logger.Log)
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, s.mail, cfg)
	s.vendor = service.NewVendorService(repos.vendor)
	s.template = service.NewTemplateService(repos.template)
	s.assessment = service.NewAssessmentService(
		repos.assessment,
		repos.vendor,
		repos.template,
		repos.user,
		s.mail,
		logger.Log,
	)
	s.document = service.NewDocumentService(repos.assessment, s.storage, logger.Log)
	s.dashboard = service.NewDashboardService(repos.dashboard, repos.vendor, repos.assessment, rdb, logger.Log)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		vendor:     controller.NewVendorController(s.vendor),
		template:   controller.NewTemplateController(s.template),
		assessment: controller.NewAssessmentController(s.assessment, s.document),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		logger.Log.Info("Migration completed, exiting")
		os.Exit(0)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The dashboard cache degrades to direct queries without Redis.
		logger.Log.Warn("Redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("vendor-risk-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(updated interface{}) {
		logger.Log.Info("Configuration reloaded")
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
