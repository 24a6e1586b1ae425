package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/labrador-ai/watsonx/v1/logger"
)

// FXModule provides *Tracer and shuts it down, flushing pending spans, when
// the application stops. It requires a Config and a *logger.Logger.
var FXModule = fx.Module("tracer",
	fx.Provide(
		func(cfg Config, log *logger.Logger) *Tracer { return NewClient(cfg, log) },
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers shutdown hooks for the tracer with the FX lifecycle.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer == nil || tracer.tracer == nil {
				return nil
			}
			tracer.logger.Info("shutting down tracer", nil, nil)
			return tracer.Shutdown(ctx)
		},
	})
}
