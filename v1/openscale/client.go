package openscale

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labrador-ai/watsonx/v1/observability"
	"github.com/labrador-ai/watsonx/v1/restclient"
)

const componentName = "openscale"

// Client talks to one OpenScale service instance.
type Client struct {
	rest         *restclient.Client
	basePath     string
	pollInterval time.Duration
	setupTimeout time.Duration
}

// NewClient creates a Client. The observer may be nil.
func NewClient(cfg Config, auth restclient.Authenticator, observer observability.Observer) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	instanceID := cfg.ServiceInstanceID
	if instanceID == "" {
		instanceID = DefaultServiceInstanceID
	}
	instance, err := pathParam("service_instance_id", instanceID)
	if err != nil {
		return nil, err
	}

	rest, err := restclient.New(restclient.Config{
		Component:              componentName,
		BaseURL:                cfg.URL,
		Authenticator:          auth,
		HTTPClient:             cfg.HTTPClient,
		Timeout:                cfg.Timeout,
		DisableSSLVerification: cfg.DisableSSLVerification,
		Observer:               observer,
	})
	if err != nil {
		return nil, err
	}

	pollInterval := cfg.PollInterval
	if pollInterval == 0 {
		pollInterval = DefaultPollInterval
	}
	setupTimeout := cfg.SetupTimeout
	if setupTimeout == 0 {
		setupTimeout = DefaultSetupTimeout
	}

	return &Client{
		rest:         rest,
		basePath:     "/openscale/" + instance + "/v2",
		pollInterval: pollInterval,
		setupTimeout: setupTimeout,
	}, nil
}

// ExecutePromptSetup starts the prompt setup and waits until it leaves the
// RUNNING state. A setup ending in ERROR returns ErrPromptSetupFailed together
// with the last status.
func (c *Client) ExecutePromptSetup(ctx context.Context, r PromptSetupRequest) (*PromptSetup, error) {
	if r.PromptTemplateAssetID == "" {
		return nil, errors.New("openscale: prompt template asset id is required")
	}
	if (r.SpaceID == "") == (r.ProjectID == "") {
		return nil, errors.New("openscale: exactly one of space id and project id is required")
	}

	query, err := formQuery(
		queryParam{"prompt_template_asset_id", r.PromptTemplateAssetID},
		queryParam{"space_id", r.SpaceID},
		queryParam{"project_id", r.ProjectID},
		queryParam{"deployment_id", r.DeploymentID},
	)
	if err != nil {
		return nil, err
	}

	body := promptSetupBody{
		LabelColumn:        r.LabelColumn,
		OperationalSpaceID: r.OperationalSpaceID,
		ProblemType:        r.ProblemType,
		InputDataType:      r.InputDataType,
		ContextFields:      r.ContextFields,
		QuestionField:      r.QuestionField,
		Monitors:           r.Monitors,
	}

	var setup PromptSetup
	err = c.rest.Do(ctx, restclient.Request{
		Operation: "execute_prompt_setup",
		Method:    http.MethodPost,
		Path:      c.basePath + "/prompt_setup",
		Query:     query,
		Body:      body,
		Resource:  r.PromptTemplateAssetID,
	}, &setup)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.setupTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		switch setup.Status.State {
		case StateFinished:
			return &setup, nil
		case StateError:
			return &setup, fmt.Errorf("%w for asset %s: %s", ErrPromptSetupFailed, r.PromptTemplateAssetID, setup.Status.Failure.message())
		}

		select {
		case <-ctx.Done():
			return &setup, fmt.Errorf("waiting for prompt setup of asset %s: %w", r.PromptTemplateAssetID, ctx.Err())
		case <-ticker.C:
		}

		next := PromptSetup{}
		err = c.rest.Do(ctx, restclient.Request{
			Operation: "get_prompt_setup",
			Method:    http.MethodGet,
			Path:      c.basePath + "/prompt_setup",
			Query:     query,
			Resource:  r.PromptTemplateAssetID,
		}, &next)
		if err != nil {
			return &setup, err
		}
		setup = next
	}
}

// ListDataMarts returns the data marts visible to the caller.
func (c *Client) ListDataMarts(ctx context.Context) ([]DataMart, error) {
	var out dataMartList
	err := c.rest.Do(ctx, restclient.Request{
		Operation: "list_data_marts",
		Method:    http.MethodGet,
		Path:      c.basePath + "/data_marts",
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.DataMarts, nil
}

// AddInstanceMapping binds a data mart to a space or project.
func (c *Client) AddInstanceMapping(ctx context.Context, dataMartID, targetID, targetType string) error {
	if dataMartID == "" || targetID == "" {
		return errors.New("openscale: data mart id and target id are required")
	}
	if targetType != TargetSpace && targetType != TargetProject {
		return fmt.Errorf("openscale: unknown instance mapping target type %q", targetType)
	}

	return c.rest.Do(ctx, restclient.Request{
		Operation: "add_instance_mapping",
		Method:    http.MethodPost,
		Path:      c.basePath + "/instance_mappings",
		Body: instanceMapping{
			ServiceInstanceID: dataMartID,
			Target:            target{TargetID: targetID, TargetType: targetType},
		},
		Resource: dataMartID,
	}, nil)
}

// GetSubscription returns a subscription by id.
func (c *Client) GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	seg, err := pathParam("subscription_id", subscriptionID)
	if err != nil {
		return nil, err
	}

	var out Subscription
	err = c.rest.Do(ctx, restclient.Request{
		Operation: "get_subscription",
		Method:    http.MethodGet,
		Path:      c.basePath + "/subscriptions/" + seg,
		Resource:  subscriptionID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDataSets returns the data sets matching f.
func (c *Client) ListDataSets(ctx context.Context, f DataSetFilter) ([]DataSet, error) {
	query, err := formQuery(
		queryParam{"type", f.Type},
		queryParam{"target.target_id", f.TargetID},
		queryParam{"target.target_type", f.TargetType},
	)
	if err != nil {
		return nil, err
	}

	var out dataSetList
	err = c.rest.Do(ctx, restclient.Request{
		Operation: "list_data_sets",
		Method:    http.MethodGet,
		Path:      c.basePath + "/data_sets",
		Query:     query,
		Resource:  f.TargetID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.DataSets, nil
}

// StoreRecords appends records to a data set in one request.
func (c *Client) StoreRecords(ctx context.Context, dataSetID string, records []PayloadRecord) error {
	seg, err := pathParam("data_set_id", dataSetID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	return c.rest.Do(ctx, restclient.Request{
		Operation: "store_records",
		Method:    http.MethodPost,
		Path:      c.basePath + "/data_sets/" + seg + "/records",
		Body:      records,
		Resource:  dataSetID,
		Size:      int64(len(records)),
	}, nil)
}
