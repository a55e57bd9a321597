package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/config"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/controller"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/repository"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/service"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/pkg/database"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/pkg/logger"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/pkg/monitoring"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/pkg/security"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
}

type repositories struct {
	user       *repository.UserRepository
	module     *repository.ModuleRepository
	quiz       *repository.QuizRepository
	challenge  *repository.ChallengeRepository
	submission *repository.SubmissionRepository
	forumPost  *repository.ForumPostRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	learning  *service.LearningService
	challenge *service.ChallengeService
	community *service.CommunityService
	dashboard *service.DashboardService
}

type controllers struct {
	auth      *controller.AuthController
	dashboard *controller.DashboardController
	learning  *controller.LearningController
	challenge *controller.ChallengeController
	community *controller.CommunityController
	health    *controller.HealthController
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		module:     repository.NewModuleRepository(db),
		quiz:       repository.NewQuizRepository(db),
		challenge:  repository.NewChallengeRepository(db),
		submission: repository.NewSubmissionRepository(db),
		forumPost:  repository.NewForumPostRepository(db),
	}
}

func initServices(repos *repositories, cfg *config.Config, db *gorm.DB) *services {
	s := &services{}
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.learning = service.NewLearningService(repos.module, repos.quiz, repos.user)
	s.challenge = service.NewChallengeService(repos.challenge, repos.submission, s.storage, cfg.Upload.AllowedExtensions, db)
	s.community = service.NewCommunityService(repos.forumPost)
	s.dashboard = service.NewDashboardService(repos.user, repos.module, repos.challenge, repos.submission)
	return s
}

func initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		dashboard: controller.NewDashboardController(s.dashboard, s.auth),
		learning:  controller.NewLearningController(s.learning),
		challenge: controller.NewChallengeController(s.challenge),
		community: controller.NewCommunityController(s.community),
		health:    controller.NewHealthController(db),
	}
}

func setupMiddlewares(router *gin.Engine) {
	router.Use(security.CORS())
	router.Use(security.Secure())
	router.Use(security.RateLimiter(1000, time.Minute))
	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	setupMiddlewares(router)
	monitoring.Init()

	repos := initRepositories(db)
	svcs := initServices(repos, cfg, db)
	ctrls := initControllers(svcs, db)

	registerRoutes(router, ctrls, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	}
	return gin.DebugMode
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

	log.Println("Server exiting")
}
