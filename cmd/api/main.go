package main

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/amaradesign/portfolio-backend/config"
	"github.com/amaradesign/portfolio-backend/internal/auth"
	authhttp "github.com/amaradesign/portfolio-backend/internal/auth/http"
	"github.com/amaradesign/portfolio-backend/internal/bootstrap"
	"github.com/amaradesign/portfolio-backend/internal/portfolio/repository"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	store := repository.NewMemStore()
	if cfg.App.SeedDemo {
		if err := repository.SeedDemoProjects(ctx, store); err != nil {
			logrus.WithError(err).Fatal("failed to seed demo projects")
		}
		logrus.Info("seeded demo projects")
	}
	if cfg.App.AdminUsername != "" {
		if _, err := store.CreateAdmin(ctx, cfg.App.AdminUsername, cfg.App.AdminPassword); err != nil {
			logrus.WithError(err).Fatal("failed to create admin user")
		}
		logrus.WithField("username", cfg.App.AdminUsername).Info("created admin user")
	} else {
		logrus.Warn("ADMIN_USERNAME not set, admin routes will be unreachable")
	}

	deps := bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Store:       store,
		Cookie: authhttp.CookieOptions{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		},
		CORSOrigins: cfg.Server.CORSOrigins,
	}

	var sessions auth.SessionStore
	if cfg.Redis.Addr != "" {
		client, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{Addr: cfg.Redis.Addr})
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect to redis")
		}
		defer client.Close()

		sessions = auth.NewRedisSessions(client, cfg.Session.TTL)
		deps.Redis = client
		logrus.WithField("addr", cfg.Redis.Addr).Info("using redis session store")
	} else {
		mem := auth.NewMemorySessions(cfg.Session.TTL)
		sessions = mem

		sweeper := cron.New()
		if _, err := sweeper.AddFunc("@every 10m", func() {
			if n := mem.Sweep(); n > 0 {
				logrus.WithField("expired", n).Debug("swept sessions")
			}
		}); err != nil {
			logrus.WithError(err).Fatal("failed to schedule session sweep")
		}
		sweeper.Start()
		defer sweeper.Stop()

		logrus.Info("using in-memory session store")
	}

	deps.Auth = auth.NewService(store, sessions)

	r := bootstrap.BuildRouter(deps)

	logrus.WithField("port", cfg.Server.Port).Info("starting server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
