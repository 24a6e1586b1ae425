package monitor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/labrador-ai/watsonx/v1/credentials"
	"github.com/labrador-ai/watsonx/v1/factsheets"
	"github.com/labrador-ai/watsonx/v1/logger"
	"github.com/labrador-ai/watsonx/v1/openscale"
	"github.com/labrador-ai/watsonx/v1/restclient"
	"github.com/labrador-ai/watsonx/v1/wml"
)

func entitlementError() *restclient.APIError {
	return &restclient.APIError{
		StatusCode: http.StatusForbidden,
		Code:       "AIQCS0002E",
		Message:    "The user entitlement does not exist for the given space.",
		Method:     http.MethodPost,
		URL:        "https://api.aiopenscale.cloud.ibm.com/openscale/x/v2/prompt_setup",
	}
}

func summarizationPrompt() PromptTemplate {
	return PromptTemplate{
		Name:            "summarize",
		ModelID:         "ibm/granite-13b-chat-v2",
		TaskID:          TaskSummarization,
		PromptVariables: []string{"text"},
		ContextFields:   []string{"ignored"},
	}
}

func finished(subscriptionID string) *openscale.PromptSetup {
	return &openscale.PromptSetup{SubscriptionID: subscriptionID, Status: openscale.SetupStatus{State: openscale.StateFinished}}
}

func TestCreatePromptMonitorSpace(t *testing.T) {
	f := newFixture(t)
	m := f.native(t, Config{SpaceID: "space-1"})
	ctx := context.Background()

	gomock.InOrder(
		f.registrar.EXPECT().CreatePrompt(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r factsheets.PromptRequest) (string, error) {
				assert.Equal(t, "space-1", r.ContainerID)
				assert.Equal(t, ContainerSpace, r.ContainerType)
				assert.Equal(t, "summarize", r.Name)
				assert.Equal(t, []string{"text"}, r.PromptVariables)
				assert.Nil(t, r.External)
				return "asset-1", nil
			}),
		f.deployer.EXPECT().CreateDeployment(gomock.Any(), wml.DeploymentRequest{
			Name:        "summarize",
			AssetID:     "asset-1",
			BaseModelID: "ibm/granite-13b-chat-v2",
			SpaceID:     "space-1",
		}).Return("dep-1", nil),
		f.monitoring.EXPECT().ExecutePromptSetup(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r openscale.PromptSetupRequest) (*openscale.PromptSetup, error) {
				assert.Equal(t, "asset-1", r.PromptTemplateAssetID)
				assert.Equal(t, "space-1", r.SpaceID)
				assert.Empty(t, r.ProjectID)
				assert.Equal(t, "dep-1", r.DeploymentID)
				assert.Equal(t, "reference_output", r.LabelColumn)
				assert.Equal(t, StageProduction, r.OperationalSpaceID)
				assert.Equal(t, TaskSummarization, r.ProblemType)
				assert.Equal(t, "unstructured_text", r.InputDataType)
				assert.Nil(t, r.ContextFields)
				assert.Equal(t, map[string]any{
					"generative_ai_quality": map[string]any{
						"parameters": map[string]any{
							"min_sample_size":       10,
							"metrics_configuration": map[string]any{},
						},
					},
				}, r.Monitors)
				return finished("sub-1"), nil
			}),
	)

	res, err := m.CreatePromptMonitor(ctx, summarizationPrompt())
	require.NoError(t, err)
	assert.Equal(t, &ProvisionResult{Kind: KindNative, AssetID: "asset-1", DeploymentID: "dep-1", SubscriptionID: "sub-1"}, res)
	assert.Equal(t, 1, f.deployerConnects)
	assert.Empty(t, f.recorder.remediations)
}

func TestCreatePromptMonitorProjectSkipsDeployment(t *testing.T) {
	f := newFixture(t)
	m := f.native(t, Config{ProjectID: "project-1"})

	f.registrar.EXPECT().CreatePrompt(gomock.Any(), gomock.Any()).Return("asset-1", nil)
	f.monitoring.EXPECT().ExecutePromptSetup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r openscale.PromptSetupRequest) (*openscale.PromptSetup, error) {
			assert.Equal(t, "project-1", r.ProjectID)
			assert.Empty(t, r.SpaceID)
			assert.Empty(t, r.DeploymentID)
			assert.Equal(t, StageDevelopment, r.OperationalSpaceID)
			return finished("sub-1"), nil
		})

	res, err := m.CreatePromptMonitor(context.Background(), summarizationPrompt())
	require.NoError(t, err)
	assert.Empty(t, res.DeploymentID)
	assert.Zero(t, f.deployerConnects)
}

func TestCreatePromptMonitorRemediatesMissingInstanceMapping(t *testing.T) {
	f := newFixture(t)
	m := f.native(t, Config{ProjectID: "project-1"})

	f.registrar.EXPECT().CreatePrompt(gomock.Any(), gomock.Any()).Return("asset-1", nil)
	gomock.InOrder(
		f.monitoring.EXPECT().ExecutePromptSetup(gomock.Any(), gomock.Any()).Return(nil, entitlementError()),
		f.monitoring.EXPECT().ListDataMarts(gomock.Any()).Return([]openscale.DataMart{
			{Metadata: openscale.Metadata{ID: "dm-1"}},
			{Metadata: openscale.Metadata{ID: "dm-2"}},
		}, nil),
		f.monitoring.EXPECT().AddInstanceMapping(gomock.Any(), "dm-1", "project-1", ContainerProject).Return(nil),
		f.monitoring.EXPECT().ExecutePromptSetup(gomock.Any(), gomock.Any()).Return(finished("sub-1"), nil),
	)

	res, err := m.CreatePromptMonitor(context.Background(), summarizationPrompt())
	require.NoError(t, err)
	assert.Equal(t, "sub-1", res.SubscriptionID)
	assert.Equal(t, []string{ContainerProject}, f.recorder.remediations)
	assert.Equal(t, 1, f.monitoringConnects)
}

func TestCreatePromptMonitorNoDataMart(t *testing.T) {
	f := newFixture(t)
	m := f.native(t, Config{ProjectID: "project-1"})

	f.registrar.EXPECT().CreatePrompt(gomock.Any(), gomock.Any()).Return("asset-1", nil)
	f.monitoring.EXPECT().ExecutePromptSetup(gomock.Any(), gomock.Any()).Return(nil, entitlementError()).Times(1)
	f.monitoring.EXPECT().ListDataMarts(gomock.Any()).Return(nil, nil)

	_, err := m.CreatePromptMonitor(context.Background(), summarizationPrompt())
	assert.ErrorIs(t, err, ErrNoDataMart)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Empty(t, f.recorder.remediations)
}

func TestCreatePromptMonitorSecondEntitlementFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	core, logs := observer.New(zapcore.DebugLevel)
	m := f.native(t, Config{SpaceID: "space-1"}, WithLogger(logger.FromZap(zap.New(core), false)))

	second := entitlementError()
	f.registrar.EXPECT().CreatePrompt(gomock.Any(), gomock.Any()).Return("asset-1", nil)
	f.deployer.EXPECT().CreateDeployment(gomock.Any(), gomock.Any()).Return("dep-1", nil)
	gomock.InOrder(
		f.monitoring.EXPECT().ExecutePromptSetup(gomock.Any(), gomock.Any()).Return(nil, entitlementError()),
		f.monitoring.EXPECT().ListDataMarts(gomock.Any()).Return([]openscale.DataMart{{Metadata: openscale.Metadata{ID: "dm-1"}}}, nil),
		f.monitoring.EXPECT().AddInstanceMapping(gomock.Any(), "dm-1", "space-1", ContainerSpace).Return(nil),
		f.monitoring.EXPECT().ExecutePromptSetup(gomock.Any(), gomock.Any()).Return(nil, second),
	)

	_, err := m.CreatePromptMonitor(context.Background(), summarizationPrompt())
	require.Error(t, err)

	var apiErr *restclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Same(t, second, apiErr)

	failures := logs.FilterMessage("Error setting up prompt monitoring").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.ErrorLevel, failures[0].Level)
	assert.Equal(t, int64(2), failures[0].ContextMap()["attempt"])
}

func TestCreatePromptMonitorFatalErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"network", errors.New("dial tcp: connection refused")},
		{"forbidden without entitlement message", &restclient.APIError{StatusCode: http.StatusForbidden, Message: "Access denied"}},
		{"entitlement message with other status", &restclient.APIError{StatusCode: http.StatusBadRequest, Message: "The user entitlement does not exist"}},
		{"setup failed", openscale.ErrPromptSetupFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			m := f.native(t, Config{ProjectID: "project-1"})

			f.registrar.EXPECT().CreatePrompt(gomock.Any(), gomock.Any()).Return("asset-1", nil)
			f.monitoring.EXPECT().ExecutePromptSetup(gomock.Any(), gomock.Any()).Return(nil, tt.err).Times(1)

			_, err := m.CreatePromptMonitor(context.Background(), summarizationPrompt())
			assert.Equal(t, tt.err, err)
		})
	}
}

func TestCreatePromptMonitorRemediationFailure(t *testing.T) {
	f := newFixture(t)
	m := f.native(t, Config{ProjectID: "project-1"})
	mappingErr := &restclient.APIError{StatusCode: http.StatusUnauthorized, Message: "no access"}

	f.registrar.EXPECT().CreatePrompt(gomock.Any(), gomock.Any()).Return("asset-1", nil)
	f.monitoring.EXPECT().ExecutePromptSetup(gomock.Any(), gomock.Any()).Return(nil, entitlementError()).Times(1)
	f.monitoring.EXPECT().ListDataMarts(gomock.Any()).Return([]openscale.DataMart{{Metadata: openscale.Metadata{ID: "dm-1"}}}, nil)
	f.monitoring.EXPECT().AddInstanceMapping(gomock.Any(), "dm-1", "project-1", ContainerProject).Return(mappingErr)

	_, err := m.CreatePromptMonitor(context.Background(), summarizationPrompt())
	assert.Same(t, mappingErr, err)
}

func TestCreatePromptMonitorAssetAndDeploymentErrors(t *testing.T) {
	t.Run("asset", func(t *testing.T) {
		f := newFixture(t)
		m := f.native(t, Config{SpaceID: "space-1"})
		assetErr := errors.New("boom")
		f.registrar.EXPECT().CreatePrompt(gomock.Any(), gomock.Any()).Return("", assetErr)

		_, err := m.CreatePromptMonitor(context.Background(), summarizationPrompt())
		assert.Same(t, assetErr, err)
		assert.Zero(t, f.deployerConnects)
		assert.Zero(t, f.monitoringConnects)
	})

	t.Run("deployment", func(t *testing.T) {
		f := newFixture(t)
		m := f.native(t, Config{SpaceID: "space-1"})
		depErr := errors.New("boom")
		f.registrar.EXPECT().CreatePrompt(gomock.Any(), gomock.Any()).Return("asset-1", nil)
		f.deployer.EXPECT().CreateDeployment(gomock.Any(), gomock.Any()).Return("", depErr)

		_, err := m.CreatePromptMonitor(context.Background(), summarizationPrompt())
		assert.Same(t, depErr, err)
		assert.Zero(t, f.monitoringConnects)
	})

	t.Run("connection", func(t *testing.T) {
		connErr := errors.New("no route")
		f := newFixture(t)
		s := f.services()
		s.NewRegistrar = func(context.Context) (AssetRegistrar, error) { return nil, connErr }
		m, err := NewPromptMonitor(Config{SpaceID: "space-1"}, WithServices(s))
		require.NoError(t, err)

		_, err = m.CreatePromptMonitor(context.Background(), summarizationPrompt())
		assert.Same(t, connErr, err)
	})
}

func TestCreatePromptMonitorRejectsInvalidPrompt(t *testing.T) {
	f := newFixture(t)
	m := f.native(t, Config{SpaceID: "space-1"})

	for _, p := range []PromptTemplate{
		{ModelID: "m", TaskID: TaskRAG},
		{Name: "n", TaskID: TaskRAG},
		{Name: "n", ModelID: "m", TaskID: "classification"},
	} {
		_, err := m.CreatePromptMonitor(context.Background(), p)
		assert.ErrorIs(t, err, ErrInvalidPrompt)
	}
	assert.Zero(t, f.registrarConnects)
}

func TestCreateExternalPromptMonitor(t *testing.T) {
	f := newFixture(t)
	m := f.detached(t, Config{SpaceID: "space-1"})

	prompt := PromptTemplate{
		Name:          "rag",
		ModelID:       "anthropic.claude-v2",
		TaskID:        TaskRAG,
		ContextFields: []string{"context1", "context2"},
		QuestionField: "input_query",
		External: &ExternalModel{
			Provider:  "AWS Bedrock",
			ModelName: "Claude",
			ModelURL:  "https://bedrock.example/claude",
		},
	}

	f.registrar.EXPECT().CreateDetachedPrompt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r factsheets.PromptRequest) (string, error) {
			require.NotNil(t, r.External)
			assert.True(t, strings.HasPrefix(r.External.PromptID, "detached_prompt_"))
			assert.Len(t, r.External.PromptID, len("detached_prompt_")+36)
			assert.Equal(t, "AWS Bedrock", r.External.ModelProvider)
			assert.Equal(t, "anthropic.claude-v2", r.External.ModelID)
			return "asset-9", nil
		})
	f.deployer.EXPECT().CreateDeployment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r wml.DeploymentRequest) (string, error) {
			assert.True(t, r.Detached)
			return "dep-9", nil
		})
	f.monitoring.EXPECT().ExecutePromptSetup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r openscale.PromptSetupRequest) (*openscale.PromptSetup, error) {
			assert.Equal(t, []string{"context1", "context2"}, r.ContextFields)
			assert.Equal(t, "input_query", r.QuestionField)
			assert.Equal(t, TaskRAG, r.ProblemType)
			return finished("sub-9"), nil
		})

	res, err := m.CreatePromptMonitor(context.Background(), prompt)
	require.NoError(t, err)
	assert.Equal(t, KindDetached, res.Kind)
	assert.Equal(t, "asset-9", res.AssetID)
}

func TestCreateExternalPromptMonitorRequiresProvider(t *testing.T) {
	f := newFixture(t)
	m := f.detached(t, Config{ProjectID: "project-1"})

	_, err := m.CreatePromptMonitor(context.Background(), summarizationPrompt())
	assert.ErrorIs(t, err, ErrInvalidPrompt)
}

func TestNeedsInstanceMapping(t *testing.T) {
	assert.True(t, needsInstanceMapping(entitlementError(), 0))
	assert.False(t, needsInstanceMapping(entitlementError(), 1))
	assert.True(t, needsInstanceMapping(errors.Join(errors.New("wrapped"), entitlementError()), 0))
	assert.False(t, needsInstanceMapping(nil, 0))
	assert.False(t, needsInstanceMapping(context.Canceled, 0))
}

func TestCreatePromptMonitorRecordsSpans(t *testing.T) {
	previous := otel.GetTracerProvider()
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	f := newFixture(t)
	m := f.native(t, Config{ProjectID: "project-1"})
	setupErr := errors.New("boom")

	f.registrar.EXPECT().CreatePrompt(gomock.Any(), gomock.Any()).Return("asset-1", nil)
	f.monitoring.EXPECT().ExecutePromptSetup(gomock.Any(), gomock.Any()).Return(nil, setupErr)

	_, err := m.CreatePromptMonitor(context.Background(), summarizationPrompt())
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "monitor.register_asset", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, "monitor.prompt_setup", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestPromptSetupStopsAtSetupTimeout(t *testing.T) {
	var polls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/icp4d-api/v1/authorize", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"platform-token"}`))
	})
	mux.HandleFunc("/openscale/"+openscale.DefaultServiceInstanceID+"/v2/prompt_setup", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer platform-token", r.Header.Get("Authorization"))
		if r.Method == http.MethodGet {
			polls.Add(1)
		}
		_, _ = w.Write([]byte(`{"prompt_template_asset_id":"asset-1","status":{"state":"RUNNING"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	m, err := NewPromptMonitor(Config{
		SpaceID:                 "space-1",
		Credentials:             &credentials.Bundle{URL: srv.URL, Username: "admin", Password: "pw"},
		PromptSetupTimeout:      100 * time.Millisecond,
		PromptSetupPollInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	start := time.Now()
	_, err = m.setupMonitor(context.Background(), m.promptSetupRequest("asset-1", "", summarizationPrompt()))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Positive(t, polls.Load())
}
