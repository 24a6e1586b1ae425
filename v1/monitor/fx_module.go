package monitor

import (
	"go.uber.org/fx"

	"github.com/labrador-ai/watsonx/v1/logger"
	"github.com/labrador-ai/watsonx/v1/observability"
)

// FXModule provides a native *Monitor configured from the environment.
//
// It expects a *logger.Logger and, optionally, an observability.Observer
// (e.g. from the metrics module) in the container.
var FXModule = fx.Module("monitor",
	fx.Provide(
		NewConfig,
		NewPromptMonitorFromParams,
	),
)

// DetachedFXModule provides a detached *Monitor configured from the environment.
var DetachedFXModule = fx.Module("monitor_detached",
	fx.Provide(
		NewConfig,
		NewExternalPromptMonitorFromParams,
	),
)

// Params are the dependencies of a Monitor resolved by fx.
type Params struct {
	fx.In

	Config   Config
	Logger   *logger.Logger         `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

func (p Params) options() []Option {
	var opts []Option
	if p.Logger != nil {
		opts = append(opts, WithLogger(p.Logger))
	}
	if p.Observer != nil {
		opts = append(opts, WithObserver(p.Observer))
	}
	return opts
}

// NewPromptMonitorFromParams is NewPromptMonitor for fx.
func NewPromptMonitorFromParams(p Params) (*Monitor, error) {
	return NewPromptMonitor(p.Config, p.options()...)
}

// NewExternalPromptMonitorFromParams is NewExternalPromptMonitor for fx.
func NewExternalPromptMonitorFromParams(p Params) (*Monitor, error) {
	return NewExternalPromptMonitor(p.Config, p.options()...)
}
