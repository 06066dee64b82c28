package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/ahams/appointment-register/internal/api"
	"github.com/ahams/appointment-register/internal/core/domain"
	"github.com/ahams/appointment-register/internal/core/ports"
	"github.com/ahams/appointment-register/internal/infrastructure/config"
	mongodb "github.com/ahams/appointment-register/internal/infrastructure/db/mongo"
	redisdb "github.com/ahams/appointment-register/internal/infrastructure/db/redis"
	"github.com/ahams/appointment-register/internal/infrastructure/realtime"
	"github.com/ahams/appointment-register/pkg/logger"
)

// @title        Appointment Register API
// @version      1.0
// @description  Hospital front-desk appointment register with single-active-session authentication and realtime state synchronization.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := mongodb.NewSettingsRepository(db).EnsureDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("seeding numbering settings failed")
	}
	if err := bootstrapAdmin(ctx, mongodb.NewUserRepository(db), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrapping admin account failed")
	}

	hub := realtime.NewHub(log)
	broadcast := realtime.NewBroadcaster(log)
	if err := broadcast.AttachHub(hub); err != nil {
		log.Fatal().Err(err).Msg("attaching websocket hub failed")
	}

	e := api.NewRouter(cfg, db, rdb, hub, broadcast)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(gctx)
	})
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("shutdown complete")
}

// bootstrapAdmin creates the configured admin account on first run. Skipped
// when no password is configured or the account already exists.
func bootstrapAdmin(ctx context.Context, users ports.UserRepository, cfg *config.Config, log zerolog.Logger) error {
	if cfg.AdminPassword == "" {
		return nil
	}
	if _, err := users.Find(ctx, cfg.AdminUsername); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := users.Upsert(ctx, &domain.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return err
	}
	log.Info().Str("username", cfg.AdminUsername).Msg("created bootstrap admin account")
	return nil
}
