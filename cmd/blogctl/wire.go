package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/samber/do/v2"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/blog-domain/internal/adapters/fixture"
	"github.com/jsamuelsen11/blog-domain/internal/adapters/memory"
	"github.com/jsamuelsen11/blog-domain/internal/app"
	"github.com/jsamuelsen11/blog-domain/internal/platform/config"
	"github.com/jsamuelsen11/blog-domain/internal/platform/health"
	"github.com/jsamuelsen11/blog-domain/internal/platform/logging"
	"github.com/jsamuelsen11/blog-domain/internal/platform/telemetry"
	"github.com/jsamuelsen11/blog-domain/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

// runtime is the wired dependency graph for one blogctl invocation.
type runtime struct {
	injector *do.RootScope
	logger   *slog.Logger
	otel     *otelProviders
}

// bootstrap loads config, builds the logger and telemetry, and registers
// every dependency. Each run gets its own run_id on the logger.
func bootstrap(ctx context.Context, opts *globalOptions, logOut io.Writer) (*runtime, error) {
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.ForRun(logging.New(cfg.Log.Level, cfg.Log.Format, logOut), uuid.NewString())

	providers, err := initTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.metrics)

	registerDependencies(injector)

	return &runtime{injector: injector, logger: logger, otel: providers}, nil
}

// withLogger returns ctx carrying the run logger.
func (r *runtime) withLogger(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, r.logger)
}

// Close flushes telemetry. Errors are logged.
func (r *runtime) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := r.otel.Shutdown(ctx); err != nil {
		r.logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

// seed decodes the fixture at path and loads it into the store.
func (r *runtime) seed(ctx context.Context, path string) (*fixture.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fixture: %w", err)
	}
	defer f.Close()

	doc, err := fixture.Decode(f)
	if err != nil {
		return nil, err
	}

	loader, err := do.Invoke[*fixture.Loader](r.injector)
	if err != nil {
		return nil, fmt.Errorf("resolving loader: %w", err)
	}

	report, err := loader.Load(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("loading fixture %s: %w", path, err)
	}
	return report, nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp, metrics: metrics}, nil
}

func registerDependencies(injector *do.RootScope) {
	do.Provide(injector, func(_ do.Injector) (*memory.Store, error) {
		return memory.NewStore(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Repositories, error) {
		return do.MustInvoke[*memory.Store](i).Repositories(), nil
	})

	do.Provide(injector, func(i do.Injector) (*fixture.Loader, error) {
		repos := do.MustInvoke[ports.Repositories](i)
		logger := do.MustInvoke[*slog.Logger](i)
		return fixture.NewLoader(repos, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BlogService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repos := do.MustInvoke[ports.Repositories](i)
		logger := do.MustInvoke[*slog.Logger](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return app.NewBlogService(repos, logger,
			app.WithPopularLimit(cfg.Blog.PopularLimit),
			app.WithViewWindow(cfg.Blog.ViewWindow),
			app.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*memory.Store](i))
		return registry, nil
	})
}
