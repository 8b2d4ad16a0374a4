package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seatudy_backend/internal/config"
	"seatudy_backend/internal/controller"
	"seatudy_backend/internal/repository"
	"seatudy_backend/internal/service"
	"seatudy_backend/pkg/database"
	"seatudy_backend/pkg/logger"
	"seatudy_backend/pkg/monitoring"
	"seatudy_backend/pkg/security"
	"seatudy_backend/pkg/tracing"

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

	tracerShutdown func(context.Context) error
}

type repositories struct {
	member    *repository.MemberRepository
	timeCheck *repository.TimeCheckRepository
	rank      *repository.RankRepository
}

type services struct {
	auth      *service.AuthService
	kakao     *service.KakaoService
	google    *service.GoogleService
	member    *service.MemberService
	timeCheck *service.TimeCheckService
	rank      *service.RankService
}

type controllers struct {
	auth      *controller.AuthController
	member    *controller.MemberController
	timeCheck *controller.TimeCheckController
	rank      *controller.RankController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		member:    repository.NewMemberRepository(db),
		timeCheck: repository.NewTimeCheckRepository(db),
		rank:      repository.NewRankRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client, clock service.Clock) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.member, cfg)
	s.rank = service.NewRankService(repos.rank, rdb, clock)
	s.kakao = service.NewKakaoService(repos.member, s.rank, cfg)
	s.google = service.NewGoogleService(repos.member, s.rank, cfg)
	s.member = service.NewMemberService(repos.member, s.rank)
	s.timeCheck = service.NewTimeCheckService(db, repos.timeCheck, repos.rank, clock, cfg.Studio.RolloverHour)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, s.kakao, s.google),
		member:    controller.NewMemberController(s.member),
		timeCheck: controller.NewTimeCheckController(s.timeCheck),
		rank:      controller.NewRankController(s.rank, a.Config.Studio.RolloverHour),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 6000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ReloadConfig 配置热更新回调，只替换可以安全热切换的部分
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config.JWT = cfg.JWT
	a.Config.RateLimit = cfg.RateLimit
	logger.Log.Info("configuration reloaded")
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := time.LoadLocation(cfg.Studio.TimeZone)
	if err != nil {
		logger.Log.Fatal("Failed to load studio time zone", zap.Error(err))
		log.Fatalf("Failed to load studio time zone: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	clock := service.NewSystemClock(loc)

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb, clock)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("seatudy-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerShutdown = tp.Shutdown
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.tracerShutdown != nil {
		if err := a.tracerShutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
