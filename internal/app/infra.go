package app

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/medera/medera_backend/config"
	"github.com/medera/medera_backend/internal/repo"
	"github.com/medera/medera_backend/pkg/authorize"
	"github.com/medera/medera_backend/pkg/database"
	"github.com/medera/medera_backend/pkg/email"
	"github.com/medera/medera_backend/pkg/observability"
	redispkg "github.com/medera/medera_backend/pkg/redis"
	s3pkg "github.com/medera/medera_backend/pkg/s3"
	"github.com/medera/medera_backend/pkg/sms"
	"github.com/medera/medera_backend/pkg/util/password"
	zarinpalpkg "github.com/medera/medera_backend/pkg/zarinpal"
)

// InfraModule provides every external dependency: databases, Redis, the
// casbin enforcer, notification channels, object storage, the payment
// gateway and telemetry.
var InfraModule = fx.Module("infra",
	fx.Provide(
		ProvideEntClient,
		ProvideRedis,
		ProvideAuthorization,
		ProvideEmailClient,
		ProvideSMSClient,
		ProvideOTel,
		ProvideS3Client,
		ProvideZarinPalClient,
		ProvideNatsClient,
	),
	fx.Invoke(ConfigurePasswordHashing),
)

// onStop registers a teardown hook with a debug line so shutdown order
// is visible in logs.
func onStop(lc fx.Lifecycle, msg string, fn func(context.Context) error) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug(msg)
			return fn(ctx)
		},
	})
}

// ConfigurePasswordHashing applies tuned Argon2id parameters before any
// registration or login can run.
func ConfigurePasswordHashing(cfg *config.Config) {
	password.SetDefaultParams(password.FromCentralConfig(cfg.Password))
}

func ProvideEntClient(lc fx.Lifecycle, cfg *config.Config) (*repo.Client, error) {
	client, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return nil, err
	}
	onStop(lc, "closing main database connection", func(context.Context) error {
		return client.Close()
	})
	return client, nil
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	onStop(lc, "closing Redis connection", func(ctx context.Context) error {
		return rdb.ShutdownSave(ctx).Err()
	})
	return rdb, nil
}

func ProvideAuthorization(lc fx.Lifecycle, cfg *config.Config) (authorize.IAuthorization, error) {
	acfg := authorize.FromCentralConfig(cfg.Authorization)
	enforcer, cleanup, err := authorize.NewEnforcer(acfg.CasbinModelPath, database.NewDSN(cfg.CasbinDatabase))
	if err != nil {
		return nil, err
	}
	auth, err := authorize.NewAuthorizationWithConfig(enforcer, acfg)
	if err != nil {
		cleanup(context.Background())
		return nil, err
	}
	if acfg.EnableAudit {
		auth = authorize.NewAuditedAuthorization(auth, slog.Default())
	}
	onStop(lc, "cleaning up casbin enforcer", func(ctx context.Context) error {
		cleanup(ctx)
		return nil
	})
	return auth, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}

func ProvideSMSClient(cfg *config.Config) (*sms.Client, error) {
	return sms.NewFromConfig(cfg.SMS)
}

func ProvideS3Client(cfg *config.Config) (*s3pkg.Client, error) {
	return s3pkg.New(cfg.S3)
}

func ProvideZarinPalClient(cfg *config.Config) *zarinpalpkg.Client {
	return zarinpalpkg.New(cfg.ZarinPal)
}

func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	nc, err := nats.Connect(cfg.Nats.URL)
	if err != nil {
		return nil, err
	}
	onStop(lc, "draining NATS connection", func(context.Context) error {
		return nc.Drain()
	})
	return nc, nil
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	onStop(lc, "shutting down observability providers", provider.Shutdown)
	return provider, nil
}
