package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketing-portal/config"
	httpadapter "marketing-portal/internal/adapter/http"
	"marketing-portal/internal/adapter/storage/postgres"
	redisstore "marketing-portal/internal/adapter/storage/redis"
	"marketing-portal/internal/adapter/voice/retell"
	"marketing-portal/internal/core/ports"
	"marketing-portal/internal/service"
	"marketing-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().Str("mode", cfg.Server.Mode).Msg("starting marketing portal API")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	leadRepo := postgres.NewLeadRepo(pool)
	webhookLogRepo := postgres.NewWebhookLogRepo(pool)
	sourceRepo := postgres.NewSourceRepo(pool)
	userRepo := postgres.NewUserRepo(pool)

	checkers := []ports.HealthChecker{postgres.NewHealthCheck(pool)}

	var rateLimitStore *redisstore.RateLimitStore
	if cfg.Redis.Enabled() {
		redisClient, err := redisstore.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		rateLimitStore = redisstore.NewRateLimitStore(redisClient)
		checkers = append(checkers, redisstore.NewHealthCheck(redisClient))
	} else {
		log.Info().Msg("redis not configured, rate limiting disabled")
	}

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	hashSvc := service.NewArgon2HashService()
	authSvc := service.NewAuthService(userRepo, hashSvc, tokenSvc)
	ingestSvc := service.NewIngestService(leadRepo)
	webhookLogSvc := service.NewWebhookLogService(webhookLogRepo, log)
	leadSvc := service.NewLeadService(leadRepo)

	var voiceClient service.WebCallCreator
	if cfg.Voice.Configured() {
		voiceClient = retell.NewClient(cfg.Voice.APIKey, cfg.Voice.BaseURL, &http.Client{
			Timeout: cfg.Voice.Timeout,
		})
	} else {
		log.Warn().Msg("voice agent not configured, web-call proxy disabled")
	}
	voiceSvc := service.NewVoiceService(voiceClient, cfg.Voice.AgentID, log)

	router := httpadapter.NewRouter(httpadapter.RouterDeps{
		Config:         cfg,
		Logger:         log,
		IngestSvc:      ingestSvc,
		WebhookLogSvc:  webhookLogSvc,
		LeadSvc:        leadSvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		VoiceSvc:       voiceSvc,
		SourceRepo:     sourceRepo,
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
