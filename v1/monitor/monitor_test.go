package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/labrador-ai/watsonx/v1/credentials"
	"github.com/labrador-ai/watsonx/v1/logger"
	"github.com/labrador-ai/watsonx/v1/metrics"
	"github.com/labrador-ai/watsonx/v1/observability"
)

var (
	_ Logger   = (*logger.Logger)(nil)
	_ Recorder = (*metrics.Metrics)(nil)
)

// fixture wires gomock services into a Monitor and counts connections.
type fixture struct {
	registrar  *MockAssetRegistrar
	deployer   *MockDeploymentProvisioner
	monitoring *MockMonitoringService
	recorder   *countingRecorder

	registrarConnects  int
	deployerConnects   int
	monitoringConnects int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &fixture{
		registrar:  NewMockAssetRegistrar(ctrl),
		deployer:   NewMockDeploymentProvisioner(ctrl),
		monitoring: NewMockMonitoringService(ctrl),
		recorder:   &countingRecorder{},
	}
}

func (f *fixture) services() Services {
	return Services{
		NewRegistrar: func(context.Context) (AssetRegistrar, error) {
			f.registrarConnects++
			return f.registrar, nil
		},
		NewDeployer: func(context.Context) (DeploymentProvisioner, error) {
			f.deployerConnects++
			return f.deployer, nil
		},
		NewMonitoring: func(context.Context) (MonitoringService, error) {
			f.monitoringConnects++
			return f.monitoring, nil
		},
	}
}

func (f *fixture) native(t *testing.T, cfg Config, opts ...Option) *Monitor {
	t.Helper()
	opts = append([]Option{WithServices(f.services()), WithObserver(f.recorder)}, opts...)
	m, err := NewPromptMonitor(cfg, opts...)
	require.NoError(t, err)
	return m
}

func (f *fixture) detached(t *testing.T, cfg Config, opts ...Option) *Monitor {
	t.Helper()
	opts = append([]Option{WithServices(f.services()), WithObserver(f.recorder)}, opts...)
	m, err := NewExternalPromptMonitor(cfg, opts...)
	require.NoError(t, err)
	return m
}

// countingRecorder is an observer that also counts workflow events.
type countingRecorder struct {
	mu           sync.Mutex
	ops          []observability.OperationContext
	remediations []string
	records      int
}

func (c *countingRecorder) ObserveOperation(op observability.OperationContext) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, op)
}

func (c *countingRecorder) RecordRemediation(containerType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remediations = append(c.remediations, containerType)
}

func (c *countingRecorder) AddPayloadRecords(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records += n
}

func failingServices(t *testing.T) Services {
	fail := func() { t.Error("no service connection expected") }
	return Services{
		NewRegistrar: func(context.Context) (AssetRegistrar, error) {
			fail()
			return nil, errors.New("unexpected")
		},
		NewDeployer: func(context.Context) (DeploymentProvisioner, error) {
			fail()
			return nil, errors.New("unexpected")
		},
		NewMonitoring: func(context.Context) (MonitoringService, error) {
			fail()
			return nil, errors.New("unexpected")
		},
	}
}

func TestNewMonitorRejectsContainerMisconfiguration(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"both", Config{APIKey: "k", SpaceID: "s", ProjectID: "p"}},
		{"neither", Config{APIKey: "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPromptMonitor(tt.cfg, WithServices(failingServices(t)))
			assert.ErrorIs(t, err, ErrInvalidConfig)

			_, err = NewExternalPromptMonitor(tt.cfg, WithServices(failingServices(t)))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewMonitorRequiresEveryService(t *testing.T) {
	s := failingServices(t)
	s.NewDeployer = nil

	_, err := NewPromptMonitor(Config{SpaceID: "s"}, WithServices(s))
	assert.ErrorIs(t, err, ErrDependencyMissing)
	assert.ErrorContains(t, err, "deployment provisioner")
}

func TestNewMonitorDefaultServices(t *testing.T) {
	t.Run("cloud requires api key", func(t *testing.T) {
		_, err := NewPromptMonitor(Config{SpaceID: "s"})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown region", func(t *testing.T) {
		_, err := NewPromptMonitor(Config{APIKey: "k", SpaceID: "s", Region: "mars-1"})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorIs(t, err, credentials.ErrUnknownRegion)
	})

	t.Run("cloud", func(t *testing.T) {
		m, err := NewPromptMonitor(Config{APIKey: "k", ProjectID: "p", Region: "eu-de"})
		require.NoError(t, err)
		assert.Equal(t, KindNative, m.Kind())
		assert.Nil(t, m.monitoring)
	})

	t.Run("cloud pak without url", func(t *testing.T) {
		_, err := NewPromptMonitor(Config{SpaceID: "s", Credentials: &credentials.Bundle{Username: "admin", Password: "pw"}})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorIs(t, err, credentials.ErrMissingParameter)
	})

	t.Run("cloud pak", func(t *testing.T) {
		bundle := &credentials.Bundle{URL: "https://cpd.example", Username: "admin", APIKey: "key", InstanceID: "openshift"}
		m, err := NewExternalPromptMonitor(Config{SpaceID: "s", Credentials: bundle})
		require.NoError(t, err)
		assert.Equal(t, KindDetached, m.Kind())

		bundle.URL = "changed"
		assert.Equal(t, "https://cpd.example", m.Config().Credentials.URL)
	})
}

func TestServiceEndpointsUseViews(t *testing.T) {
	disable := false
	eps, err := newServiceEndpoints(Config{
		SpaceID: "s",
		Credentials: &credentials.Bundle{
			URL:                    "https://cpd.example",
			Username:               "admin",
			Password:               "pw",
			InstanceID:             "ICP",
			Version:                "5.0",
			DisableSSLVerification: &disable,
		},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://cpd.example", eps.asset.url)
	assert.Equal(t, "https://cpd.example", eps.deployment.url)
	assert.Equal(t, "https://cpd.example", eps.monitoring.url)
	assert.False(t, eps.monitoring.disableSSL)
	assert.Equal(t, "ICP", eps.deployment.fields[credentials.KeyInstanceID])
	assert.Equal(t, "5.0", eps.deployment.fields[credentials.KeyVersion])
	assert.NotContains(t, eps.asset.fields, credentials.KeyInstanceID)
}

func TestConfigDerivedValues(t *testing.T) {
	space := Config{SpaceID: "s"}
	assert.Equal(t, "s", space.ContainerID())
	assert.Equal(t, ContainerSpace, space.ContainerType())
	assert.Equal(t, StageProduction, space.DeploymentStage())

	project := Config{ProjectID: "p"}
	assert.Equal(t, "p", project.ContainerID())
	assert.Equal(t, ContainerProject, project.ContainerType())
	assert.Equal(t, StageDevelopment, project.DeploymentStage())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("WATSONX_API_KEY", "key")
	t.Setenv("WATSONX_PROJECT_ID", "p")
	t.Setenv("CPD_URL", "")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "p", cfg.ProjectID)
	assert.Equal(t, credentials.DefaultRegion, cfg.Region)
	assert.Equal(t, 10*time.Minute, cfg.PromptSetupTimeout)
	assert.Equal(t, 5*time.Second, cfg.PromptSetupPollInterval)
	assert.Nil(t, cfg.Credentials)
}
