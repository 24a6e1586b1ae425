package credentials

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

// Keys used in the projected views.
const (
	KeyURL                    = "url"
	KeyServiceURL             = "service_url"
	KeyUsername               = "username"
	KeyPassword               = "password"
	KeyAPIKey                 = "api_key"
	KeyBedrockURL             = "bedrock_url"
	KeyInstanceID             = "instance_id"
	KeyVersion                = "version"
	KeyDisableSSLVerification = "disable_ssl_verification"
)

// Bundle holds the connection details of a Cloud Pak for Data cluster.
//
// Empty strings are treated as absent.
type Bundle struct {
	// URL is the cluster host URL. Required.
	URL string `yaml:"url" env:"CPD_URL"`

	// APIKey is the platform API key when IAM is enabled.
	APIKey string `yaml:"api_key" env:"CPD_API_KEY"`

	Username string `yaml:"username" env:"CPD_USERNAME"`
	Password string `yaml:"password" env:"CPD_PASSWORD"`

	// BedrockURL is only needed when IAM integration is enabled on CP4D 4.0.x.
	BedrockURL string `yaml:"bedrock_url" env:"CPD_BEDROCK_URL"`

	// InstanceID is "icp" or "openshift"; any other value is ignored.
	InstanceID string `yaml:"instance_id" env:"CPD_INSTANCE_ID"`

	// Version is the Cloud Pak for Data release, e.g. "5.0".
	Version string `yaml:"version" env:"CPD_VERSION"`

	// DisableSSLVerification defaults to true when nil.
	DisableSSLVerification *bool `yaml:"disable_ssl_verification" env:"CPD_DISABLE_SSL_VERIFICATION"`
}

// LoadBundle reads a Bundle from the CPD_* environment variables.
// It returns nil when CPD_URL is not set, meaning IBM Cloud mode.
func LoadBundle() (*Bundle, error) {
	var b Bundle
	if err := env.Parse(&b); err != nil {
		return nil, err
	}
	if b.URL == "" {
		return nil, nil
	}
	return &b, nil
}

// SSLVerificationDisabled reports the effective disable_ssl_verification value.
func (b *Bundle) SSLVerificationDisabled() bool {
	if b.DisableSSLVerification == nil {
		return true
	}
	return *b.DisableSSLVerification
}

// ValidInstanceID reports whether id is one of the accepted instance ids.
func ValidInstanceID(id string) bool {
	switch strings.ToLower(id) {
	case "icp", "openshift":
		return true
	default:
		return false
	}
}

// ToMap renders the present fields of the bundle.
// An invalid instance_id is left out.
func (b *Bundle) ToMap() map[string]any {
	m := map[string]any{
		KeyDisableSSLVerification: b.SSLVerificationDisabled(),
	}
	put := func(key, value string) {
		if value != "" {
			m[key] = value
		}
	}
	put(KeyURL, b.URL)
	put(KeyAPIKey, b.APIKey)
	put(KeyUsername, b.Username)
	put(KeyPassword, b.Password)
	put(KeyBedrockURL, b.BedrockURL)
	put(KeyVersion, b.Version)
	if ValidInstanceID(b.InstanceID) {
		m[KeyInstanceID] = b.InstanceID
	}
	return m
}
