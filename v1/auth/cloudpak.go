package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labrador-ai/watsonx/v1/restclient"
)

// defaultCloudPakTTL is assumed when a platform token carries no exp claim.
const defaultCloudPakTTL = 12 * time.Hour

// CloudPakConfig configures a CloudPakAuthenticator.
type CloudPakConfig struct {
	// URL is the cluster host URL.
	URL string

	Username string

	// Exactly one of Password and APIKey is used; Password wins when both are set.
	Password string
	APIKey   string

	// BedrockURL routes authentication through the IAM identity provider.
	BedrockURL string

	DisableSSLVerification bool

	HTTPClient *http.Client
}

// CloudPakAuthenticator authenticates requests with a Cloud Pak for Data platform token.
type CloudPakAuthenticator struct {
	cfg    CloudPakConfig
	tokens *tokenManager
}

// NewCloudPakAuthenticator validates cfg and returns an authenticator.
func NewCloudPakAuthenticator(cfg CloudPakConfig) (*CloudPakAuthenticator, error) {
	if cfg.URL == "" {
		return nil, errors.New("auth: Cloud Pak for Data URL is required")
	}
	if cfg.Username == "" {
		return nil, errors.New("auth: Cloud Pak for Data username is required")
	}
	if cfg.Password == "" && cfg.APIKey == "" {
		return nil, errors.New("auth: Cloud Pak for Data password or api_key is required")
	}
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	cfg.BedrockURL = strings.TrimRight(cfg.BedrockURL, "/")
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = restclient.NewHTTPClient(30*time.Second, cfg.DisableSSLVerification)
	}

	a := &CloudPakAuthenticator{cfg: cfg}
	a.tokens = newTokenManager(a.requestToken)
	return a, nil
}

// Authenticate sets the Authorization header on req.
func (a *CloudPakAuthenticator) Authenticate(ctx context.Context, req *http.Request) error {
	return a.tokens.authenticate(ctx, req)
}

// Token returns a valid platform token, fetching one when needed.
func (a *CloudPakAuthenticator) Token(ctx context.Context) (string, error) {
	return a.tokens.Token(ctx)
}

func (a *CloudPakAuthenticator) requestToken(ctx context.Context) (token, error) {
	var (
		raw string
		err error
	)
	if a.cfg.BedrockURL != "" {
		raw, err = a.bedrockToken(ctx)
	} else {
		raw, err = a.authorizeToken(ctx)
	}
	if err != nil {
		return token{}, err
	}
	now := time.Now()
	return token{value: raw, expiresAt: expiryFromJWT(raw, now, defaultCloudPakTTL)}, nil
}

// authorizeToken calls /icp4d-api/v1/authorize.
func (a *CloudPakAuthenticator) authorizeToken(ctx context.Context) (string, error) {
	payload := map[string]string{"username": a.cfg.Username}
	if a.cfg.Password != "" {
		payload["password"] = a.cfg.Password
	} else {
		payload["api_key"] = a.cfg.APIKey
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode authorize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.URL+"/icp4d-api/v1/authorize", strings.NewReader(string(data)))
	if err != nil {
		return "", fmt.Errorf("build authorize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var out struct {
		Token string `json:"token"`
	}
	if err := doTokenRequest(a.cfg.HTTPClient, req, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// bedrockToken gets an IAM identity token from the bedrock provider and
// exchanges it for a platform token.
func (a *CloudPakAuthenticator) bedrockToken(ctx context.Context) (string, error) {
	secret := a.cfg.Password
	if secret == "" {
		secret = a.cfg.APIKey
	}
	form := url.Values{
		"grant_type": {"password"},
		"username":   {a.cfg.Username},
		"password":   {secret},
		"scope":      {"openid"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.BedrockURL+"/idprovider/v1/auth/identitytoken", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build identity token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var identity struct {
		AccessToken string `json:"access_token"`
	}
	if err := doTokenRequest(a.cfg.HTTPClient, req, &identity); err != nil {
		return "", err
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.URL+"/v1/preauth/validateAuth", nil)
	if err != nil {
		return "", fmt.Errorf("build validateAuth request: %w", err)
	}
	req.Header.Set("username", a.cfg.Username)
	req.Header.Set("iam-token", identity.AccessToken)
	req.Header.Set("Accept", "application/json")

	var platform struct {
		AccessToken string `json:"accessToken"`
	}
	if err := doTokenRequest(a.cfg.HTTPClient, req, &platform); err != nil {
		return "", err
	}
	return platform.AccessToken, nil
}
