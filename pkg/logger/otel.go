package logger

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/bridges/otelzerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
)

// newOTLPHook builds a zerolog hook that mirrors every record to an OTLP/HTTP
// collector. The exporter connects lazily, so an unreachable endpoint only
// shows up as export errors at flush time.
func newOTLPHook(ctx context.Context, cfg OTLPConfig) (*otelzerolog.Hook, *sdklog.LoggerProvider, error) {
	opts := []otlploghttp.Option{
		otlploghttp.WithTimeout(cfg.GetTimeout()),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, otlploghttp.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otlploghttp.WithInsecure())
	}

	exporter, err := otlploghttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("creating otlp log exporter: %w", err)
	}

	res := resource.NewSchemaless(attribute.String("service.name", cfg.GetServiceName()))
	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)

	hook := otelzerolog.NewHook(cfg.GetServiceName(), otelzerolog.WithLoggerProvider(provider))
	return hook, provider, nil
}
