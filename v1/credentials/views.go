package credentials

import (
	"fmt"
	"strings"
)

var (
	monitoringKeys = []string{KeyUsername, KeyPassword, KeyAPIKey, KeyDisableSSLVerification}
	assetKeys      = []string{KeyUsername, KeyPassword, KeyAPIKey, KeyBedrockURL}
	deploymentKeys = []string{KeyUsername, KeyPassword, KeyAPIKey, KeyInstanceID, KeyVersion, KeyBedrockURL}
)

// View is a field-filtered projection of a Bundle for one service.
type View map[string]any

// String returns the string value of key, or "".
func (v View) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Bool returns the bool value of key, or false.
func (v View) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

// Has reports whether key is present.
func (v View) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Views holds the three service-specific projections of a Bundle.
type Views struct {
	Monitoring View
	Asset      View
	Deployment View
}

// Views projects the bundle into its monitoring, asset and deployment views.
func (b *Bundle) Views() (Views, error) {
	src := b.ToMap()

	monitoring, err := filterKeys(src, monitoringKeys, KeyURL)
	if err != nil {
		return Views{}, err
	}

	asset, err := filterKeys(src, assetKeys, KeyURL)
	if err != nil {
		return Views{}, err
	}
	asset[KeyServiceURL] = asset[KeyURL]
	delete(asset, KeyURL)

	deployment, err := filterKeys(src, deploymentKeys, KeyURL)
	if err != nil {
		return Views{}, err
	}

	return Views{Monitoring: monitoring, Asset: asset, Deployment: deployment}, nil
}

// filterKeys keeps the required and optional keys of src whose value is not nil.
// Every required key must be present.
func filterKeys(src map[string]any, optional []string, required ...string) (View, error) {
	var missing []string
	for _, key := range required {
		if _, ok := src[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingParameter, strings.Join(missing, ", "))
	}

	out := make(View, len(required)+len(optional))
	for _, keys := range [][]string{required, optional} {
		for _, key := range keys {
			if value, ok := src[key]; ok && value != nil {
				out[key] = value
			}
		}
	}
	return out, nil
}
