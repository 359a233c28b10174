package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/InnovationLadders/myprojectplateform12-sub002/internal/api/http"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/api/http/handlers"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/auth"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/config"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/events"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/observability"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/persistence"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/service"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/session"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	profileRepo := repository.NewProfileRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	consultationRepo := repository.NewConsultationRepository(pool)
	resourceRepo := repository.NewResourceRepository(pool)
	galleryRepo := repository.NewGalleryRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	profileCache := repository.NewProfileCache(redis.Client, cfg.Session.ProfileCacheTTL())

	dispatcher := events.NewInMemoryDispatcher()

	accountService := service.NewAccountService(*cfg, service.AccountDependencies{
		ProfileRepo:       profileRepo,
		ProfileCache:      profileCache,
		PasswordResetRepo: resetRepo,
		Dispatcher:        dispatcher,
	})
	adminService := service.NewAdminService(profileRepo, profileCache, dispatcher)
	projectService := service.NewProjectService(projectRepo)
	consultationService := service.NewConsultationService(consultationRepo, profileRepo, dispatcher)
	resourceService := service.NewResourceService(resourceRepo)
	galleryService := service.NewGalleryService(galleryRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	broker := session.NewBroker()
	provider := service.NewIdentityProvider(accountService, broker)
	resolver := session.NewResolver(profileRepo, profileCache, logger, cfg.Session.ResolveTimeout())
	guard := session.NewGuard()

	authMiddleware := auth.NewMiddleware(accountService.TokenManager(), resolver)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(accountService, provider, resolver, logger),
		Admin:          handlers.NewAdminHandler(adminService),
		Projects:       handlers.NewProjectHandler(projectService),
		Consultations:  handlers.NewConsultationHandler(consultationService),
		Resources:      handlers.NewResourceHandler(resourceService),
		Gallery:        handlers.NewGalleryHandler(galleryService),
		Pages:          handlers.NewPagesHandler(),
		AuthMiddleware: authMiddleware,
		Guard:          guard,
	})

	stopWatcher := worker.StartNotificationWorker(notificationService, provider)
	defer stopWatcher()

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
