package observability

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/fnkit/logger"
	"github.com/kbukum/fnkit/version"
)

// InstrumentationName names the meter and tracer fnkit records with.
const InstrumentationName = version.ModulePath

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter installs a global meter provider exporting over OTLP/HTTP.
// The returned provider should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))
	return mp, nil
}

// Meter returns a named meter from the global provider, tagged with the
// fnkit version.
func Meter(name string) metric.Meter {
	return otel.Meter(name, metric.WithInstrumentationVersion(version.String()))
}

// Instruments holds the metric instruments of the resilience helpers.
type Instruments struct {
	retryAttempts     metric.Int64Counter
	concurrencyActive metric.Int64UpDownCounter
	concurrencyWait   metric.Float64Histogram
	rateLimitRejected metric.Int64Counter
	timeoutTotal      metric.Int64Counter
}

// NewInstruments creates the instruments on the given meter.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	retryAttempts, err := meter.Int64Counter("retry.attempts",
		metric.WithDescription("Attempts made by retried operations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating retry.attempts counter: %w", err)
	}

	concurrencyActive, err := meter.Int64UpDownCounter("concurrency.active",
		metric.WithDescription("Calls currently holding a concurrency slot"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating concurrency.active counter: %w", err)
	}

	concurrencyWait, err := meter.Float64Histogram("concurrency.wait",
		metric.WithDescription("Time spent waiting for a concurrency slot"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating concurrency.wait histogram: %w", err)
	}

	rateLimitRejected, err := meter.Int64Counter("ratelimit.rejected",
		metric.WithDescription("Calls rejected by a rate limiter"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ratelimit.rejected counter: %w", err)
	}

	timeoutTotal, err := meter.Int64Counter("timeout.total",
		metric.WithDescription("Calls that exceeded their deadline"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating timeout.total counter: %w", err)
	}

	return &Instruments{
		retryAttempts:     retryAttempts,
		concurrencyActive: concurrencyActive,
		concurrencyWait:   concurrencyWait,
		rateLimitRejected: rateLimitRejected,
		timeoutTotal:      timeoutTotal,
	}, nil
}

var defaultInstruments atomic.Pointer[Instruments]

// Default returns the instruments recorded by fnkit, created on first use
// from the global meter provider. If creation fails it falls back to no-op
// instruments and logs the error.
func Default() *Instruments {
	if i := defaultInstruments.Load(); i != nil {
		return i
	}
	i, err := NewInstruments(Meter(InstrumentationName))
	if err != nil {
		logger.Get("observability").Error("creating instruments", logger.Fields(logger.FieldError, err.Error()))
		i = &Instruments{}
	}
	defaultInstruments.CompareAndSwap(nil, i)
	return defaultInstruments.Load()
}

// SetDefault replaces the instruments returned by Default.
func SetDefault(i *Instruments) {
	defaultInstruments.Store(i)
}

// RecordRetryAttempt counts one attempt of operation.
func (m *Instruments) RecordRetryAttempt(ctx context.Context, operation string, attempt int, err error) {
	if m.retryAttempts == nil {
		return
	}
	m.retryAttempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrOperationName, operation),
		attribute.Int(AttrAttempt, attempt),
		attribute.Bool(AttrFailed, err != nil),
	))
}

// RecordAcquire records a granted concurrency slot and how long it took.
func (m *Instruments) RecordAcquire(ctx context.Context, limiter, key string, wait time.Duration) {
	if m.concurrencyActive == nil {
		return
	}
	m.concurrencyActive.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrLimiter, limiter)))
	m.concurrencyWait.Record(ctx, wait.Seconds(), metric.WithAttributes(
		attribute.String(AttrLimiter, limiter),
		attribute.String(AttrKey, key),
	))
}

// RecordRelease records a returned concurrency slot.
func (m *Instruments) RecordRelease(ctx context.Context, limiter string) {
	if m.concurrencyActive == nil {
		return
	}
	m.concurrencyActive.Add(ctx, -1, metric.WithAttributes(attribute.String(AttrLimiter, limiter)))
}

// RecordRateLimited counts a call refused by limiter.
func (m *Instruments) RecordRateLimited(ctx context.Context, limiter string) {
	if m.rateLimitRejected == nil {
		return
	}
	m.rateLimitRejected.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrLimiter, limiter)))
}

// RecordTimeout counts a call of operation cut off by its deadline.
func (m *Instruments) RecordTimeout(ctx context.Context, operation string) {
	if m.timeoutTotal == nil {
		return
	}
	m.timeoutTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrOperationName, operation)))
}
