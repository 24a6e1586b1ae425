package monitor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/labrador-ai/watsonx/v1/openscale"
	"github.com/labrador-ai/watsonx/v1/restclient"
	"github.com/labrador-ai/watsonx/v1/tracer"
	"github.com/labrador-ai/watsonx/v1/wml"
)

const (
	labelColumn   = "reference_output"
	inputDataType = "unstructured_text"
	minSampleSize = 10

	// entitlementMessage marks a prompt setup rejected for a missing
	// data mart instance mapping.
	entitlementMessage = "The user entitlement does not exist"

	maxSetupAttempts = 2
)

// CreatePromptMonitor registers p, deploys it when the container is a space,
// and sets up generative AI quality monitoring for it.
//
// Errors from the services are logged and returned unchanged.
func (m *Monitor) CreatePromptMonitor(ctx context.Context, p PromptTemplate) (*ProvisionResult, error) {
	if err := m.kind.validate(p); err != nil {
		return nil, err
	}

	assetID, err := m.registerAsset(ctx, p)
	if err != nil {
		return nil, err
	}

	var deploymentID string
	if m.cfg.ContainerType() == ContainerSpace {
		deploymentID, err = m.provisionDeployment(ctx, assetID, p)
		if err != nil {
			return nil, err
		}
	}

	subscriptionID, err := m.setupMonitor(ctx, m.promptSetupRequest(assetID, deploymentID, p))
	if err != nil {
		return nil, err
	}

	m.logger.InfoWithContext(ctx, "Prompt monitor created", nil, map[string]interface{}{
		"asset_id":        assetID,
		"deployment_id":   deploymentID,
		"subscription_id": subscriptionID,
		"kind":            m.kind.kind().String(),
	})

	return &ProvisionResult{
		Kind:           m.kind.kind(),
		AssetID:        assetID,
		DeploymentID:   deploymentID,
		SubscriptionID: subscriptionID,
	}, nil
}

func (m *Monitor) registerAsset(ctx context.Context, p PromptTemplate) (string, error) {
	ctx, span := m.tracer.Start(ctx, "monitor.register_asset", trace.WithAttributes(
		attribute.String("asset.kind", m.kind.kind().String()),
		attribute.String("container.type", m.cfg.ContainerType()),
	))
	defer span.End()

	registrar, err := m.services.NewRegistrar(ctx)
	if err != nil {
		m.logger.ErrorWithContext(ctx, "Error connecting to asset service", err, m.containerFields())
		tracer.RecordError(span, err)
		return "", err
	}

	assetID, err := m.kind.register(ctx, registrar, p.promptRequest(m.cfg), p)
	if err != nil {
		m.logger.ErrorWithContext(ctx, "Error creating prompt template asset", err, map[string]interface{}{
			"name":           p.Name,
			"container_id":   m.cfg.ContainerID(),
			"container_type": m.cfg.ContainerType(),
		})
		tracer.RecordError(span, err)
		return "", err
	}

	span.SetAttributes(attribute.String("asset.id", assetID))
	m.logger.InfoWithContext(ctx, "Prompt template asset created", nil, map[string]interface{}{"asset_id": assetID})
	return assetID, nil
}

func (m *Monitor) provisionDeployment(ctx context.Context, assetID string, p PromptTemplate) (string, error) {
	ctx, span := m.tracer.Start(ctx, "monitor.provision_deployment", trace.WithAttributes(
		attribute.String("asset.id", assetID),
	))
	defer span.End()

	deployer, err := m.services.NewDeployer(ctx)
	if err != nil {
		m.logger.ErrorWithContext(ctx, "Error connecting to deployment service", err, m.containerFields())
		tracer.RecordError(span, err)
		return "", err
	}

	deploymentID, err := deployer.CreateDeployment(ctx, wml.DeploymentRequest{
		Name:        p.Name,
		Description: p.Description,
		AssetID:     assetID,
		BaseModelID: p.ModelID,
		Detached:    m.kind.kind() == KindDetached,
		SpaceID:     m.cfg.SpaceID,
	})
	if err != nil {
		m.logger.ErrorWithContext(ctx, "Error creating deployment", err, map[string]interface{}{
			"asset_id": assetID,
			"space_id": m.cfg.SpaceID,
		})
		tracer.RecordError(span, err)
		return "", err
	}

	span.SetAttributes(attribute.String("deployment.id", deploymentID))
	m.logger.InfoWithContext(ctx, "Deployment created", nil, map[string]interface{}{"deployment_id": deploymentID})
	return deploymentID, nil
}

func (m *Monitor) promptSetupRequest(assetID, deploymentID string, p PromptTemplate) openscale.PromptSetupRequest {
	r := openscale.PromptSetupRequest{
		PromptTemplateAssetID: assetID,
		SpaceID:               m.cfg.SpaceID,
		ProjectID:             m.cfg.ProjectID,
		DeploymentID:          deploymentID,
		LabelColumn:           labelColumn,
		OperationalSpaceID:    m.cfg.DeploymentStage(),
		ProblemType:           p.TaskID,
		InputDataType:         inputDataType,
		Monitors: map[string]any{
			"generative_ai_quality": map[string]any{
				"parameters": map[string]any{
					"min_sample_size":       minSampleSize,
					"metrics_configuration": map[string]any{},
				},
			},
		},
	}
	if p.TaskID == TaskRAG {
		r.ContextFields = p.ContextFields
		r.QuestionField = p.QuestionField
	}
	return r
}

// setupMonitor executes the prompt setup. A first attempt rejected for a
// missing instance mapping is remediated and retried once.
func (m *Monitor) setupMonitor(ctx context.Context, req openscale.PromptSetupRequest) (string, error) {
	ctx, span := m.tracer.Start(ctx, "monitor.prompt_setup", trace.WithAttributes(
		attribute.String("asset.id", req.PromptTemplateAssetID),
		attribute.String("operational_space", req.OperationalSpaceID),
	))
	defer span.End()

	svc, err := m.monitoringService(ctx)
	if err != nil {
		tracer.RecordError(span, err)
		return "", err
	}

	for attempt := 0; ; attempt++ {
		span.SetAttributes(attribute.Int("prompt_setup.attempt", attempt+1))

		setup, err := svc.ExecutePromptSetup(ctx, req)
		if err == nil {
			if setup == nil || setup.SubscriptionID == "" {
				err = fmt.Errorf("prompt setup of asset %s returned no subscription id", req.PromptTemplateAssetID)
				m.logger.ErrorWithContext(ctx, "Error setting up prompt monitoring", err, m.containerFields())
				tracer.RecordError(span, err)
				return "", err
			}
			span.SetAttributes(attribute.String("subscription.id", setup.SubscriptionID))
			return setup.SubscriptionID, nil
		}

		if !needsInstanceMapping(err, attempt) {
			m.logger.ErrorWithContext(ctx, "Error setting up prompt monitoring", err, map[string]interface{}{
				"asset_id":       req.PromptTemplateAssetID,
				"deployment_id":  req.DeploymentID,
				"container_id":   m.cfg.ContainerID(),
				"container_type": m.cfg.ContainerType(),
				"attempt":        attempt + 1,
			})
			tracer.RecordError(span, err)
			return "", err
		}

		m.logger.WarnWithContext(ctx, "Prompt setup needs a data mart instance mapping, remediating", err, m.containerFields())
		if err := m.remediateInstanceMapping(ctx, svc); err != nil {
			tracer.RecordError(span, err)
			return "", err
		}
	}
}

// needsInstanceMapping reports whether err is the missing-entitlement 403 on
// an attempt that may still be retried.
func needsInstanceMapping(err error, attempt int) bool {
	if attempt >= maxSetupAttempts-1 {
		return false
	}
	var apiErr *restclient.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusForbidden && strings.Contains(apiErr.Message, entitlementMessage)
}

// remediateInstanceMapping maps the first data mart to the container.
func (m *Monitor) remediateInstanceMapping(ctx context.Context, svc MonitoringService) error {
	marts, err := svc.ListDataMarts(ctx)
	if err != nil {
		m.logger.ErrorWithContext(ctx, "Error listing data marts", err, m.containerFields())
		return err
	}
	if len(marts) == 0 {
		err := fmt.Errorf("%w: %w: provision a data mart before monitoring prompts in %s %s",
			ErrInvalidConfig, ErrNoDataMart, m.cfg.ContainerType(), m.cfg.ContainerID())
		m.logger.ErrorWithContext(ctx, "No data mart found", err, m.containerFields())
		return err
	}

	dataMartID := marts[0].Metadata.ID
	if err := svc.AddInstanceMapping(ctx, dataMartID, m.cfg.ContainerID(), m.cfg.ContainerType()); err != nil {
		m.logger.ErrorWithContext(ctx, "Error adding instance mapping", err, map[string]interface{}{
			"data_mart_id":   dataMartID,
			"container_id":   m.cfg.ContainerID(),
			"container_type": m.cfg.ContainerType(),
		})
		return err
	}

	m.recorder.RecordRemediation(m.cfg.ContainerType())
	m.logger.InfoWithContext(ctx, "Instance mapping added", nil, map[string]interface{}{
		"data_mart_id":   dataMartID,
		"container_id":   m.cfg.ContainerID(),
		"container_type": m.cfg.ContainerType(),
	})
	return nil
}
