// Package observability wires tracing and profiling: OpenTelemetry export
// through Uptrace, continuous profiling through Pyroscope and an optional
// pprof listener.
package observability

import (
	"context"

	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/gfoot/sportrate/internal/config"
	"github.com/gfoot/sportrate/internal/platform/logging"
)

// InitTracing configures the global OpenTelemetry providers. The returned
// shutdown func flushes pending spans; call it on exit.
func InitTracing(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.UptraceEnabled {
		logger.Info("tracing disabled", "reason", "UPTRACE_ENABLED=false")
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)

	logger.Info("tracing enabled",
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
	)

	return uptrace.Shutdown, nil
}
