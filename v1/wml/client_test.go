package wml

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDeployment(t *testing.T) {
	tests := []struct {
		name      string
		detached  bool
		marker    string
		notMarker string
	}{
		{name: "native", detached: false, marker: "foundation_model", notMarker: "detached"},
		{name: "detached", detached: true, marker: "detached", notMarker: "foundation_model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, deploymentsPath, r.URL.Path)
				assert.Equal(t, DefaultVersion, r.URL.Query().Get("version"))

				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "summarize deployment", body["name"])
				assert.Equal(t, "space-1", body["space_id"])
				assert.Equal(t, map[string]any{"id": "asset-1"}, body["prompt_template"])
				assert.Equal(t, "ibm/granite-13b-chat-v2", body["base_model_id"])
				assert.Equal(t, map[string]any{}, body[tt.marker])
				assert.NotContains(t, body, tt.notMarker)

				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte(`{"metadata":{"id":"dep-1"},"entity":{}}`))
			}))
			defer srv.Close()

			c, err := NewClient(Config{URL: srv.URL}, nil, nil)
			require.NoError(t, err)
			c.SetDefaultSpace("space-1")

			id, err := c.CreateDeployment(context.Background(), DeploymentRequest{
				Name:        "summarize",
				AssetID:     "asset-1",
				BaseModelID: "ibm/granite-13b-chat-v2",
				Detached:    tt.detached,
			})
			require.NoError(t, err)
			assert.Equal(t, "dep-1", id)
		})
	}
}

func TestCreateDeploymentRequiresSpace(t *testing.T) {
	c, err := NewClient(Config{URL: "http://127.0.0.1:1"}, nil, nil)
	require.NoError(t, err)

	_, err = c.CreateDeployment(context.Background(), DeploymentRequest{AssetID: "a"})
	assert.ErrorContains(t, err, "space id is required")
}

func TestCreateDeploymentMissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"metadata":{}}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{URL: srv.URL, SpaceID: "s"}, nil, nil)
	require.NoError(t, err)

	_, err = c.CreateDeployment(context.Background(), DeploymentRequest{AssetID: "a"})
	assert.Error(t, err)
}
