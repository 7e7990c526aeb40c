package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/pulsebot/backend/api/handler"
	"github.com/pulsebot/backend/internal/config"
	"github.com/pulsebot/backend/internal/infrastructure/buffer"
	"github.com/pulsebot/backend/internal/infrastructure/monitor"
	pgInfra "github.com/pulsebot/backend/internal/infrastructure/postgres"
	redisInfra "github.com/pulsebot/backend/internal/infrastructure/redis"
	"github.com/pulsebot/backend/internal/middleware"
	"github.com/pulsebot/backend/internal/router"
	"github.com/pulsebot/backend/internal/services"
	"github.com/pulsebot/backend/internal/services/lifecycle"
	"github.com/pulsebot/backend/internal/slack"
	"github.com/pulsebot/backend/pkg/httpcontext"
	"github.com/pulsebot/backend/pkg/logger"
	"github.com/pulsebot/backend/repository/postgres"
	redisRepo "github.com/pulsebot/backend/repository/redis"
	authUC "github.com/pulsebot/backend/usecase/auth"
	homeUC "github.com/pulsebot/backend/usecase/home"
	interactionUC "github.com/pulsebot/backend/usecase/interaction"
	promptUC "github.com/pulsebot/backend/usecase/prompt"
	updatesUC "github.com/pulsebot/backend/usecase/updates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "deliveries")
	if err != nil {
		zapLogger.Fatal("failed to open delivery buffer", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	riskRepo := postgres.NewRiskRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	updateRepo := postgres.NewUpdateRepository(pool)
	stateRepo := redisRepo.NewStateRepository(redisClient, cfg.Redis.StateTTL)

	slackClient := slack.NewClient(slack.Config{
		BaseURL:  cfg.Slack.APIBaseURL,
		BotToken: cfg.Slack.BotToken,
		Timeout:  cfg.Slack.APITimeout,
	}, zapLogger)

	deliveryProcessor := services.NewDeliveryProcessor(
		bufferStore,
		mon,
		slackClient,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
			Retention:  time.Duration(cfg.Buffer.RetentionHours) * time.Hour,
		},
	)
	deliveryProcessor.Start()
	manager.Register("delivery_processor", func(ctx context.Context) error {
		deliveryProcessor.Stop(ctx)
		return nil
	})

	deliveryBridge := services.NewDeliveryBridge(deliveryProcessor)

	homeUseCase := homeUC.New(projectRepo, taskRepo, riskRepo, stateRepo, slackClient, deliveryBridge, zapLogger)
	updatesUseCase := updatesUC.New(updateRepo, userRepo, slackClient, deliveryBridge, zapLogger)
	promptUseCase := promptUC.New(userRepo, updateRepo, slackClient, deliveryBridge, zapLogger)
	interactionUseCase := interactionUC.New(
		projectRepo,
		taskRepo,
		riskRepo,
		homeUseCase,
		updatesUseCase,
		promptUseCase,
		slackClient,
		zapLogger,
	)
	authUseCase := authUC.New(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AdminKey, zapLogger)

	if cfg.Prompt.Enabled {
		scheduler := services.NewPromptScheduler(promptUseCase, cfg.Prompt.SweepInterval, zapLogger)
		scheduler.Start()
		manager.Register("prompt_scheduler", func(ctx context.Context) error {
			scheduler.Stop(ctx)
			return nil
		})
	}

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Events:       apiHandler.NewEventsHandler(homeUseCase, ctxAdapter, zapLogger),
		Interactions: apiHandler.NewInteractionsHandler(interactionUseCase, ctxAdapter, zapLogger),
		Auth:         apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Admin:        apiHandler.NewAdminHandler(userRepo, updateRepo, promptUseCase, ctxAdapter, zapLogger),
		Health:       apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	verifySlack := middleware.SlackSignature(cfg.Slack.SigningSecret, zapLogger)
	requireAuth := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, verifySlack, requireAuth)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
