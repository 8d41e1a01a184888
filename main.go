package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"inkdesk/config"
	_ "inkdesk/docs"
	"inkdesk/internal/calendar"
	"inkdesk/internal/observability/metrics"
	"inkdesk/internal/repository"
	"inkdesk/internal/service"
	"inkdesk/internal/storage"
	"inkdesk/internal/transport/rest"
	"inkdesk/internal/transport/websocket"
	"inkdesk/internal/upstream"
	"inkdesk/migrations"
	"inkdesk/pkg/database"
	"inkdesk/pkg/keybox"
	"inkdesk/pkg/logger"
)

const sessionPurgeInterval = time.Hour

// @title inkdesk API
// @version 1.0
// @description Backend for the studio booking app: appointment wizard, calendar and settings.

// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	log, err := logger.NewLogger("inkdesk")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("running database migrations")
	if err := database.RunMigrations(ctx, db, migrations.FS, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}

	var fileStorage storage.FileStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			log.Fatal("failed to initialise S3 storage", zap.Error(err))
		}
		fileStorage = s3Storage
		log.Info("S3 storage ready", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		log.Warn("S3 storage not configured, signed consent images will not be archived")
	}

	kb, err := keybox.New(cfg.Keybox.Secret, cfg.Keybox.Salt)
	if err != nil {
		log.Fatal("failed to initialise keybox", zap.Error(err))
	}

	memo, err := calendar.NewMemo(cfg.Studio.CalendarMemoUsers)
	if err != nil {
		log.Fatal("failed to initialise calendar memo", zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	client := upstream.NewClient(cfg.Upstream, log, metrics.NewUpstreamMetrics(registry))

	repos := repository.NewRepositories(db, rdb, cfg.Studio.DraftTTL)

	hub := websocket.NewHub(nil, log)

	services, err := service.NewServices(service.Deps{
		Repos:       repos,
		Upstream:    client,
		Keybox:      kb,
		FileStorage: fileStorage,
		Memo:        memo,
		Notifier:    hub,
		Metrics:     metrics.NewWizardMetrics(registry),
		Logger:      log,
		Config:      cfg,
	})
	if err != nil {
		log.Fatal("failed to initialise services", zap.Error(err))
	}
	hub.SetTokenParser(services.Auth)
	go hub.Run(ctx)

	go purgeSessions(ctx, services.Auth, log)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	handler := rest.NewHandler(services, log, cfg, hub, registry)
	handler.InitRoutes(router)

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", srv.Addr))

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
		os.Exit(1)
	}

	log.Info("server stopped")
}

func purgeSessions(ctx context.Context, auth service.AuthService, log *zap.Logger) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := auth.PurgeExpired(ctx)
			if err != nil {
				log.Warn("failed to purge expired sessions", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("expired sessions purged", zap.Int64("count", n))
			}
		}
	}
}
