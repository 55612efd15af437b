package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	httpcontext "github.com/krylovda/relayboard-server/internal/api/http/context"
	"github.com/krylovda/relayboard-server/internal/api/http/router"
	httpserver "github.com/krylovda/relayboard-server/internal/api/http/server"
	"github.com/krylovda/relayboard-server/internal/config"
	"github.com/krylovda/relayboard-server/internal/logger"
	"github.com/krylovda/relayboard-server/internal/metrics"
	"github.com/krylovda/relayboard-server/internal/model"
	"github.com/krylovda/relayboard-server/internal/repository/postgres"
	redisrepo "github.com/krylovda/relayboard-server/internal/repository/redis"
	"github.com/krylovda/relayboard-server/internal/server"
	"github.com/krylovda/relayboard-server/internal/service"
	"github.com/krylovda/relayboard-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}
	defer redisClient.Close()

	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	revokedTokenRepo := redisrepo.NewRevokedAccessTokenStore(redisClient)
	tokenCodec := token.NewJWT(cfg.JWT.Secret)

	registry := prometheus.NewRegistry()
	sessionService := service.NewSession(
		tokenCodec,
		refreshTokenRepo,
		revokedTokenRepo,
		cfg.JWT.AccessTTL,
		cfg.JWT.RefreshTTL,
		metrics.New(registry),
		logger,
	)

	r := router.New(sessionService, httpcontext.NewManager(), registry, logger)
	srv := httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
