package monitor

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/labrador-ai/watsonx/v1/logger"
	"github.com/labrador-ai/watsonx/v1/observability"
)

const instrumentationName = "github.com/labrador-ai/watsonx/v1/monitor"

// Logger is the logging interface used by a Monitor. *logger.Logger implements it.
type Logger interface {
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Recorder counts workflow events. *metrics.Metrics implements it.
type Recorder interface {
	RecordRemediation(containerType string)
	AddPayloadRecords(n int)
}

type nopRecorder struct{}

func (nopRecorder) RecordRemediation(string) {}
func (nopRecorder) AddPayloadRecords(int)    {}

// Monitor provisions prompt-template monitoring in one container.
type Monitor struct {
	cfg      Config
	kind     assetKind
	services Services
	logger   Logger
	recorder Recorder
	tracer   trace.Tracer

	// monitoring is created on first use.
	monitoring MonitoringService
}

type options struct {
	logger     Logger
	observer   observability.Observer
	services   *Services
	httpClient *http.Client
}

// Option configures a Monitor.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithObserver receives one notification per service request. An observer
// that also implements Recorder counts remediations and stored records.
func WithObserver(obs observability.Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithServices replaces the default service clients.
func WithServices(s Services) Option {
	return func(o *options) {
		o.services = &s
	}
}

// WithHTTPClient sets the *http.Client of the default service clients and
// authenticators.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// NewPromptMonitor returns a Monitor for prompt templates running on a
// watsonx.ai foundation model.
func NewPromptMonitor(cfg Config, opts ...Option) (*Monitor, error) {
	return newMonitor(nativeAsset{}, cfg, opts)
}

// NewExternalPromptMonitor returns a Monitor for detached prompt templates of
// externally hosted models.
func NewExternalPromptMonitor(cfg Config, opts ...Option) (*Monitor, error) {
	return newMonitor(newDetachedAsset(), cfg, opts)
}

func newMonitor(kind assetKind, cfg Config, opts []Option) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}

	if cfg.Credentials != nil {
		bundle := *cfg.Credentials
		cfg.Credentials = &bundle
	}

	var services Services
	if o.services != nil {
		services = *o.services
	} else {
		var err error
		services, err = defaultServices(cfg, o.httpClient, o.observer, o.logger)
		if err != nil {
			return nil, err
		}
	}
	if err := services.validate(); err != nil {
		return nil, err
	}

	var recorder Recorder = nopRecorder{}
	if r, ok := o.observer.(Recorder); ok {
		recorder = r
	}

	return &Monitor{
		cfg:      cfg,
		kind:     kind,
		services: services,
		logger:   o.logger,
		recorder: recorder,
		tracer:   otel.Tracer(instrumentationName),
	}, nil
}

// Kind returns the kind of prompt template the Monitor registers.
func (m *Monitor) Kind() Kind {
	return m.kind.kind()
}

// Config returns a copy of the Monitor's configuration.
func (m *Monitor) Config() Config {
	return m.cfg
}

// monitoringService returns the cached monitoring client, connecting on first use.
func (m *Monitor) monitoringService(ctx context.Context) (MonitoringService, error) {
	if m.monitoring != nil {
		return m.monitoring, nil
	}
	svc, err := m.services.NewMonitoring(ctx)
	if err != nil {
		m.logger.ErrorWithContext(ctx, "Error connecting to monitoring service", err, m.containerFields())
		return nil, err
	}
	m.monitoring = svc
	return svc, nil
}

func (m *Monitor) containerFields() map[string]interface{} {
	return map[string]interface{}{
		"container_id":   m.cfg.ContainerID(),
		"container_type": m.cfg.ContainerType(),
	}
}
