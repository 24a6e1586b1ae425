package monitor

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labrador-ai/watsonx/v1/auth"
	"github.com/labrador-ai/watsonx/v1/credentials"
	"github.com/labrador-ai/watsonx/v1/factsheets"
	"github.com/labrador-ai/watsonx/v1/observability"
	"github.com/labrador-ai/watsonx/v1/openscale"
	"github.com/labrador-ai/watsonx/v1/restclient"
	"github.com/labrador-ai/watsonx/v1/wml"
)

//go:generate mockgen -source=services.go -destination=mock_services.go -package=monitor

// AssetRegistrar creates prompt-template assets.
type AssetRegistrar interface {
	CreatePrompt(ctx context.Context, r factsheets.PromptRequest) (string, error)
	CreateDetachedPrompt(ctx context.Context, r factsheets.PromptRequest) (string, error)
}

// DeploymentProvisioner deploys prompt-template assets into a space.
type DeploymentProvisioner interface {
	CreateDeployment(ctx context.Context, r wml.DeploymentRequest) (string, error)
}

// MonitoringService is the subset of the monitoring API used by a Monitor.
type MonitoringService interface {
	ExecutePromptSetup(ctx context.Context, r openscale.PromptSetupRequest) (*openscale.PromptSetup, error)
	ListDataMarts(ctx context.Context) ([]openscale.DataMart, error)
	AddInstanceMapping(ctx context.Context, dataMartID, targetID, targetType string) error
	GetSubscription(ctx context.Context, subscriptionID string) (*openscale.Subscription, error)
	ListDataSets(ctx context.Context, f openscale.DataSetFilter) ([]openscale.DataSet, error)
	StoreRecords(ctx context.Context, dataSetID string, records []openscale.PayloadRecord) error
}

var (
	_ AssetRegistrar        = (*factsheets.Client)(nil)
	_ DeploymentProvisioner = (*wml.Client)(nil)
	_ MonitoringService     = (*openscale.Client)(nil)
)

// Services holds the factories a Monitor connects with. Every factory is required.
type Services struct {
	NewRegistrar  func(ctx context.Context) (AssetRegistrar, error)
	NewDeployer   func(ctx context.Context) (DeploymentProvisioner, error)
	NewMonitoring func(ctx context.Context) (MonitoringService, error)
}

func (s Services) validate() error {
	switch {
	case s.NewRegistrar == nil:
		return fmt.Errorf("%w: asset registrar", ErrDependencyMissing)
	case s.NewDeployer == nil:
		return fmt.Errorf("%w: deployment provisioner", ErrDependencyMissing)
	case s.NewMonitoring == nil:
		return fmt.Errorf("%w: monitoring service", ErrDependencyMissing)
	}
	return nil
}

// endpoint is the connection settings of one service.
type endpoint struct {
	url        string
	auth       restclient.Authenticator
	disableSSL bool

	// fields are logged when connecting.
	fields map[string]interface{}
}

// serviceEndpoints resolves the three service endpoints for cfg without
// making any request.
type serviceEndpoints struct {
	asset      endpoint
	deployment endpoint
	monitoring endpoint
}

// newServiceEndpoints builds endpoints from the API key and region, or from
// the Cloud Pak for Data views when a credential bundle is set.
func newServiceEndpoints(cfg Config, httpClient *http.Client) (serviceEndpoints, error) {
	if !cfg.onPremises() {
		if cfg.APIKey == "" {
			return serviceEndpoints{}, fmt.Errorf("%w: api_key is required without a credential bundle", ErrInvalidConfig)
		}
		region, err := credentials.LookupRegion(cfg.Region)
		if err != nil {
			return serviceEndpoints{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		iam, err := auth.NewIAMAuthenticator(auth.IAMConfig{
			APIKey:     cfg.APIKey,
			URL:        credentials.IAMTokenURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return serviceEndpoints{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		cloud := func(url string) endpoint {
			return endpoint{url: url, auth: iam, fields: map[string]interface{}{"url": url, "mode": "cloud", "region": region.Name}}
		}
		return serviceEndpoints{
			asset:      cloud(region.Factsheets),
			deployment: cloud(region.WML),
			monitoring: cloud(region.OpenScale),
		}, nil
	}

	views, err := cfg.Credentials.Views()
	if err != nil {
		return serviceEndpoints{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	disableSSL := cfg.Credentials.SSLVerificationDisabled()

	asset, err := cloudPakEndpoint(views.Asset, credentials.KeyServiceURL, disableSSL, httpClient)
	if err != nil {
		return serviceEndpoints{}, err
	}
	deployment, err := cloudPakEndpoint(views.Deployment, credentials.KeyURL, disableSSL, httpClient)
	if err != nil {
		return serviceEndpoints{}, err
	}
	monitoring, err := cloudPakEndpoint(views.Monitoring, credentials.KeyURL, views.Monitoring.Bool(credentials.KeyDisableSSLVerification), httpClient)
	if err != nil {
		return serviceEndpoints{}, err
	}
	return serviceEndpoints{asset: asset, deployment: deployment, monitoring: monitoring}, nil
}

func cloudPakEndpoint(view credentials.View, urlKey string, disableSSL bool, httpClient *http.Client) (endpoint, error) {
	a, err := auth.NewCloudPakAuthenticator(auth.CloudPakConfig{
		URL:                    view.String(urlKey),
		Username:               view.String(credentials.KeyUsername),
		Password:               view.String(credentials.KeyPassword),
		APIKey:                 view.String(credentials.KeyAPIKey),
		BedrockURL:             view.String(credentials.KeyBedrockURL),
		DisableSSLVerification: disableSSL,
		HTTPClient:             httpClient,
	})
	if err != nil {
		return endpoint{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	fields := map[string]interface{}{"url": view.String(urlKey), "mode": "cloud_pak"}
	for _, key := range []string{credentials.KeyInstanceID, credentials.KeyVersion} {
		if view.Has(key) {
			fields[key] = view[key]
		}
	}
	return endpoint{url: view.String(urlKey), auth: a, disableSSL: disableSSL, fields: fields}, nil
}

// defaultServices wires the factsheets, wml and openscale clients.
func defaultServices(cfg Config, httpClient *http.Client, observer observability.Observer, log Logger) (Services, error) {
	eps, err := newServiceEndpoints(cfg, httpClient)
	if err != nil {
		return Services{}, err
	}

	return Services{
		NewRegistrar: func(ctx context.Context) (AssetRegistrar, error) {
			log.DebugWithContext(ctx, "Connecting to asset service", nil, eps.asset.fields)
			return factsheets.NewClient(factsheets.Config{
				URL:                    eps.asset.url,
				DisableSSLVerification: eps.asset.disableSSL,
				HTTPClient:             httpClient,
			}, eps.asset.auth, observer)
		},
		NewDeployer: func(ctx context.Context) (DeploymentProvisioner, error) {
			log.DebugWithContext(ctx, "Connecting to deployment service", nil, eps.deployment.fields)
			return wml.NewClient(wml.Config{
				URL:                    eps.deployment.url,
				SpaceID:                cfg.SpaceID,
				DisableSSLVerification: eps.deployment.disableSSL,
				HTTPClient:             httpClient,
			}, eps.deployment.auth, observer)
		},
		NewMonitoring: func(ctx context.Context) (MonitoringService, error) {
			log.DebugWithContext(ctx, "Connecting to monitoring service", nil, eps.monitoring.fields)
			return openscale.NewClient(openscale.Config{
				URL:                    eps.monitoring.url,
				PollInterval:           cfg.PromptSetupPollInterval,
				SetupTimeout:           cfg.PromptSetupTimeout,
				DisableSSLVerification: eps.monitoring.disableSSL,
				HTTPClient:             httpClient,
			}, eps.monitoring.auth, observer)
		},
	}, nil
}
