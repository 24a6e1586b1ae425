package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labrador-ai/watsonx/v1/restclient"
)

// DefaultIAMURL is the IBM Cloud IAM token endpoint.
const DefaultIAMURL = "https://iam.cloud.ibm.com/identity/token"

// IAMConfig configures an IAMAuthenticator.
type IAMConfig struct {
	APIKey string

	// URL defaults to DefaultIAMURL.
	URL string

	HTTPClient *http.Client
}

// IAMAuthenticator authenticates requests with an IBM Cloud IAM access token.
type IAMAuthenticator struct {
	cfg    IAMConfig
	tokens *tokenManager
}

// NewIAMAuthenticator validates cfg and returns an authenticator.
// No request is made until the first Authenticate call.
func NewIAMAuthenticator(cfg IAMConfig) (*IAMAuthenticator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("auth: IAM API key is required")
	}
	if cfg.URL == "" {
		cfg.URL = DefaultIAMURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = restclient.NewHTTPClient(30*time.Second, false)
	}

	a := &IAMAuthenticator{cfg: cfg}
	a.tokens = newTokenManager(a.requestToken)
	return a, nil
}

// Authenticate sets the Authorization header on req.
func (a *IAMAuthenticator) Authenticate(ctx context.Context, req *http.Request) error {
	return a.tokens.authenticate(ctx, req)
}

// Token returns a valid access token, fetching one when needed.
func (a *IAMAuthenticator) Token(ctx context.Context) (string, error) {
	return a.tokens.Token(ctx)
}

func (a *IAMAuthenticator) requestToken(ctx context.Context) (token, error) {
	form := url.Values{
		"grant_type": {"urn:ibm:params:oauth:grant-type:apikey"},
		"apikey":     {a.cfg.APIKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return token{}, fmt.Errorf("build IAM token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
		Expiration  int64  `json:"expiration"`
	}
	if err := doTokenRequest(a.cfg.HTTPClient, req, &out); err != nil {
		return token{}, err
	}

	expiresAt := time.Unix(out.Expiration, 0)
	if out.Expiration == 0 {
		expiresAt = time.Now().Add(time.Duration(out.ExpiresIn) * time.Second)
	}
	return token{value: out.AccessToken, expiresAt: expiresAt}, nil
}

// doTokenRequest sends req and decodes the JSON token response into out.
func doTokenRequest(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("token request to %s: %w", req.URL.Redacted(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return restclient.NewAPIError(req.Method, req.URL.Redacted(), resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode token response: %w", err)
	}
	return nil
}
