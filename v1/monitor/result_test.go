package monitor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisionResultJSON(t *testing.T) {
	tests := []struct {
		name   string
		result ProvisionResult
		want   string
	}{
		{
			name:   "native in project",
			result: ProvisionResult{Kind: KindNative, AssetID: "a", SubscriptionID: "s"},
			want:   `{"prompt_template_asset_id":"a","deployment_id":null,"subscription_id":"s"}`,
		},
		{
			name:   "detached in space",
			result: ProvisionResult{Kind: KindDetached, AssetID: "a", DeploymentID: "d", SubscriptionID: "s"},
			want:   `{"detached_prompt_template_asset_id":"a","deployment_id":"d","subscription_id":"s"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.result)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "native", KindNative.String())
	assert.Equal(t, "detached", KindDetached.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
