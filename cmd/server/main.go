package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/toolgate/internal/db"
	"github.com/dmitrymomot/toolgate/internal/store"
	"github.com/dmitrymomot/toolgate/internal/views"
	"github.com/dmitrymomot/toolgate/modules/account"
	"github.com/dmitrymomot/toolgate/modules/billing"
	"github.com/dmitrymomot/toolgate/pkg/auth"
	"github.com/dmitrymomot/toolgate/pkg/catalog"
	"github.com/dmitrymomot/toolgate/pkg/clientip"
	"github.com/dmitrymomot/toolgate/pkg/config"
	"github.com/dmitrymomot/toolgate/pkg/email"
	"github.com/dmitrymomot/toolgate/pkg/environment"
	"github.com/dmitrymomot/toolgate/pkg/httpserver"
	"github.com/dmitrymomot/toolgate/pkg/jwt"
	"github.com/dmitrymomot/toolgate/pkg/logger"
	"github.com/dmitrymomot/toolgate/pkg/pg"
	"github.com/dmitrymomot/toolgate/pkg/ratelimiter"
	"github.com/dmitrymomot/toolgate/pkg/redis"
	"github.com/dmitrymomot/toolgate/pkg/requestid"
	"github.com/dmitrymomot/toolgate/pkg/subscription"
)

// Config is the whole server configuration, read from the environment.
type Config struct {
	AppEnv           string   `env:"APP_ENV" envDefault:"development"`
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`

	HTTP      httpserver.Config
	Postgres  pg.Config
	Redis     redis.Config
	JWT       jwt.Config
	Auth      auth.Config
	Email     email.Config
	Stripe    subscription.StripeConfig
	Brand     views.Brand
	Account   account.Config
	Billing   billing.Config
	RateLimit ratelimiter.Config `envPrefix:"RATE_LIMIT_"`
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(environment.Parse(cfg.AppEnv), "toolgate"),
		logger.WithContextExtractors(requestid.LoggerExtractor(), auth.LoggerExtractor()),
	)
	slog.SetDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Postgres.MigrateOnStart {
		if err := pg.Migrate(ctx, pool, cfg.Postgres, db.Migrations, log); err != nil {
			return err
		}
	}

	readiness := []func(context.Context) error{pg.Healthcheck(pool)}

	var limits ratelimiter.Store
	if cfg.Redis.Enabled() {
		rdb, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		limits = ratelimiter.NewRedisStore(rdb, "toolgate:ratelimit")
		readiness = append(readiness, redis.Healthcheck(rdb))
	} else {
		mem := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(time.Minute))
		defer mem.Close()
		limits = mem
	}
	bucket, err := ratelimiter.NewBucket(limits, cfg.RateLimit, "auth")
	if err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	tokens, err := jwt.New(cfg.JWT)
	if err != nil {
		return err
	}
	sender, err := email.New(cfg.Email)
	if err != nil {
		return err
	}
	provider, err := subscription.NewStripeProvider(cfg.Stripe)
	if err != nil {
		return err
	}

	st := store.New(pool)
	authSvc, err := auth.NewService(cfg.Auth, st, tokens,
		account.NewEmailNotifier(sender, cfg.Brand),
		auth.WithLogger(log),
	)
	if err != nil {
		return err
	}
	catalogSvc := catalog.New(st, catalog.WithLogger(log))
	subs := subscription.NewService(provider, st, st, subscription.WithLogger(log))

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(cfg.TrustedIPHeaders...),
		httpserver.RequestLogger(log),
		middleware.Recoverer,
		middleware.StripSlashes,
	)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, readiness...))

	account.New(cfg.Account, authSvc, cfg.Brand,
		account.WithLogger(log),
		account.WithRateLimit(bucket),
	).Routes(r)
	billing.New(cfg.Billing, authSvc, catalogSvc, subs,
		billing.WithLogger(log),
	).Routes(r)

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}
