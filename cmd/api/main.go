package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "claims-backoffice/internal/adapter/http"
	"claims-backoffice/internal/adapter/jobs"
	"claims-backoffice/internal/adapter/middleware"
	"claims-backoffice/internal/adapter/repository/mysql"
	"claims-backoffice/internal/config"
	"claims-backoffice/internal/domain/claim"
	"claims-backoffice/internal/infrastructure/cache"
	"claims-backoffice/internal/infrastructure/db"
	"claims-backoffice/internal/infrastructure/metrics"
	"claims-backoffice/internal/infrastructure/storage"
	"claims-backoffice/internal/usecase/auth"
	"claims-backoffice/internal/usecase/cases"
	claimuc "claims-backoffice/internal/usecase/claim"
	"claims-backoffice/internal/usecase/financial"
	"claims-backoffice/internal/usecase/offboarding"
	"claims-backoffice/internal/usecase/partner"
	"claims-backoffice/internal/usecase/provider"
	"claims-backoffice/internal/usecase/user"
)

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.StandardLogger()
	if cfg.LogFormat == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	}
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg := config.Load()
	log := newLogger(cfg)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	if cfg.DBAutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			log.WithError(err).Fatal("migrate database")
		}
	}

	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("open redis")
	}
	defer rdb.Close()

	s3c, err := storage.NewS3Client(ctx, storage.S3Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		log.WithError(err).Fatal("open s3")
	}
	store := storage.NewS3Store(s3c, cfg.S3Bucket)

	m := metrics.New()

	// repositories
	userRepo := mysql.NewUserRepository(gdb)
	claimRepo := mysql.NewClaimRepository(gdb)
	partnerRepo := mysql.NewPartnerRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// usecases
	authUC := auth.NewUsecase(userRepo, cache.NewRevocationList(rdb), cfg.JWTSecret, cfg.SessionTTL())
	claimUC := claimuc.NewUsecase(claimRepo, partnerRepo, tx, store, claim.NewWorkflow(cfg.TransitionPolicy()), m)

	health := httpadp.NewHandler(
		httpadp.Check{Name: "db", Ping: db.HealthCheck(gdb)},
		httpadp.Check{Name: "redis", Ping: cache.HealthCheck(rdb)},
	)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpadp.ErrorHandler
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Metrics(m), echomw.Recover(), echomw.RequestID(), middleware.RequestLogger(log))

	httpadp.Routes{
		Health:      health,
		Auth:        httpadp.NewAuthHandler(authUC, httpadp.CookieConfig{Name: cfg.SessionCookieName, Secure: cfg.CookieSecure}),
		Cases:       httpadp.NewCaseHandler(cases.NewUsecase(mysql.NewCaseRepository(gdb), userRepo, tx)),
		Claims:      httpadp.NewClaimHandler(claimUC, cfg.MaxUploadBytes),
		Financial:   httpadp.NewFinancialHandler(financial.NewUsecase(mysql.NewFinancialRepository(gdb), claimRepo, tx, store), cfg.MaxUploadBytes),
		Offboarding: httpadp.NewOffboardingHandler(offboarding.NewUsecase(mysql.NewOffboardingRepository(gdb), claimRepo, tx, store), cfg.MaxUploadBytes),
		Partners:    httpadp.NewPartnerHandler(partner.NewUsecase(partnerRepo, tx)),
		Providers:   httpadp.NewProviderHandler(provider.NewUsecase(mysql.NewServiceProviderRepository(gdb))),
		Users:       httpadp.NewUserHandler(user.NewUsecase(userRepo, partnerRepo)),
		BodyLimit:   echomw.BodyLimit(cfg.BodyLimit()),
		Session:     middleware.RequireSession(authUC, cfg.SessionCookieName),
		Idempotency: middleware.Idempotency(rdb, cfg.IdempotencyTTL(), cfg.MaxRequestBytes()),
		Metrics:     m.Handler(),
	}.Register(e)

	refresher := jobs.NewStatsRefresher(claimRepo, m, log)
	if err := refresher.Refresh(ctx); err != nil {
		log.WithError(err).Warn("initial stats refresh failed")
	}
	sched, err := jobs.Schedule(cfg.StatsRefreshCron, refresher)
	if err != nil {
		log.WithError(err).Fatal("schedule jobs")
	}
	sched.Start()

	addr := ":" + cfg.AppPort
	go func() {
		log.WithField("addr", addr).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	<-sched.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
