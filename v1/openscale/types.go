package openscale

import "errors"

// ErrPromptSetupFailed is returned when a prompt setup ends in the ERROR state.
var ErrPromptSetupFailed = errors.New("openscale: prompt setup failed")

// Prompt setup states.
const (
	StateRunning  = "RUNNING"
	StateFinished = "FINISHED"
	StateError    = "ERROR"
)

// Target types of instance mappings and data sets.
const (
	TargetSpace        = "space"
	TargetProject      = "project"
	TargetSubscription = "subscription"
)

// DataSetTypePayloadLogging is the data set type holding scoring payloads.
const DataSetTypePayloadLogging = "payload_logging"

// PromptSetupRequest configures monitoring of a prompt-template asset.
// Exactly one of SpaceID and ProjectID must be set.
type PromptSetupRequest struct {
	PromptTemplateAssetID string
	SpaceID               string
	ProjectID             string
	DeploymentID          string

	LabelColumn        string
	OperationalSpaceID string
	ProblemType        string
	InputDataType      string
	ContextFields      []string
	QuestionField      string
	Monitors           map[string]any
}

type promptSetupBody struct {
	LabelColumn        string         `json:"label_column,omitempty"`
	OperationalSpaceID string         `json:"operational_space_id,omitempty"`
	ProblemType        string         `json:"problem_type,omitempty"`
	InputDataType      string         `json:"input_data_type,omitempty"`
	ContextFields      []string       `json:"context_fields,omitempty"`
	QuestionField      string         `json:"question_field,omitempty"`
	Monitors           map[string]any `json:"monitors,omitempty"`
}

// PromptSetup is the status of a prompt setup.
type PromptSetup struct {
	PromptTemplateAssetID string      `json:"prompt_template_asset_id"`
	ProjectID             string      `json:"project_id,omitempty"`
	SpaceID               string      `json:"space_id,omitempty"`
	DeploymentID          string      `json:"deployment_id,omitempty"`
	ServiceProviderID     string      `json:"service_provider_id,omitempty"`
	SubscriptionID        string      `json:"subscription_id,omitempty"`
	MRMMonitorInstanceID  string      `json:"mrm_monitor_instance_id,omitempty"`
	Status                SetupStatus `json:"status"`
}

// SetupStatus is the state of a prompt setup and its failure, if any.
type SetupStatus struct {
	State   string         `json:"state"`
	Failure *StatusFailure `json:"failure,omitempty"`
}

// StatusFailure lists the errors of a failed setup.
type StatusFailure struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (f *StatusFailure) message() string {
	if f == nil || len(f.Errors) == 0 {
		return "no failure details"
	}
	return f.Errors[0].Message
}

// Metadata is the common resource metadata.
type Metadata struct {
	ID        string `json:"id"`
	CRN       string `json:"crn,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// DataMart is a monitoring data store.
type DataMart struct {
	Metadata Metadata `json:"metadata"`
}

type dataMartList struct {
	DataMarts []DataMart `json:"data_marts"`
}

type instanceMapping struct {
	ServiceInstanceID string `json:"service_instance_id"`
	Target            target `json:"target"`
}

type target struct {
	TargetID   string `json:"target_id"`
	TargetType string `json:"target_type"`
}

// Subscription is a monitored asset.
type Subscription struct {
	Metadata Metadata `json:"metadata"`
	Entity   struct {
		AssetProperties struct {
			FeatureFields []string `json:"feature_fields"`
		} `json:"asset_properties"`
	} `json:"entity"`
}

// FeatureFields returns the ordered input fields of the subscription.
func (s *Subscription) FeatureFields() []string {
	return s.Entity.AssetProperties.FeatureFields
}

// DataSetFilter selects data sets by type and target.
type DataSetFilter struct {
	Type       string
	TargetID   string
	TargetType string
}

// DataSet is a monitoring table.
type DataSet struct {
	Metadata Metadata `json:"metadata"`
}

type dataSetList struct {
	DataSets []DataSet `json:"data_sets"`
}

// PayloadRecord is one scoring payload of a prompt template.
type PayloadRecord struct {
	Request  PayloadRequest  `json:"request"`
	Response PayloadResponse `json:"response"`
}

// PayloadRequest carries the template variables of a scoring request.
type PayloadRequest struct {
	Parameters PayloadParameters `json:"parameters"`
}

// PayloadParameters holds the prompt variable values.
type PayloadParameters struct {
	TemplateVariables map[string]string `json:"template_variables"`
}

// PayloadResponse carries the generated output.
type PayloadResponse struct {
	Results []map[string]any `json:"results"`
}
