package monitor

import "encoding/json"

// ProvisionResult identifies the resources created by CreatePromptMonitor.
// Callers keep it to relay payloads later.
type ProvisionResult struct {
	Kind           Kind
	AssetID        string
	DeploymentID   string // empty for project containers
	SubscriptionID string
}

// MarshalJSON names the asset id after the Kind and writes a null
// deployment_id when no deployment was created.
func (r ProvisionResult) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		r.Kind.assetIDField(): r.AssetID,
		"deployment_id":       nil,
		"subscription_id":     r.SubscriptionID,
	}
	if r.DeploymentID != "" {
		out["deployment_id"] = r.DeploymentID
	}
	return json.Marshal(out)
}
