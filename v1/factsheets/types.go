package factsheets

// Container types accepted by the asset service.
const (
	ContainerSpace   = "space"
	ContainerProject = "project"
)

// PromptRequest describes a prompt-template asset.
type PromptRequest struct {
	ContainerID   string
	ContainerType string

	Name            string
	Description     string
	ModelID         string
	TaskID          string
	ModelVersion    map[string]string
	ModelParameters map[string]any

	// PromptVariables are declared with an empty default value.
	PromptVariables []string

	Instruction  string
	InputText    string
	InputPrefix  string
	OutputPrefix string

	// External is required by CreateDetachedPrompt and ignored otherwise.
	External *ExternalInformation
}

// ExternalInformation describes where a detached prompt is evaluated.
type ExternalInformation struct {
	PromptID       string
	ModelID        string
	ModelProvider  string
	ModelName      string
	ModelURL       string
	PromptURL      string
	AdditionalInfo map[string]any
}

// prompt is the wire form of a prompt-template asset.
type prompt struct {
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	TaskIDs         []string          `json:"task_ids,omitempty"`
	ModelVersion    map[string]string `json:"model_version,omitempty"`
	PromptVariables map[string]string `json:"prompt_variables,omitempty"`
	InputMode       string            `json:"input_mode,omitempty"`
	Prompt          promptBody        `json:"prompt"`
}

type promptBody struct {
	ModelID             string               `json:"model_id"`
	ModelParameters     map[string]any       `json:"model_parameters,omitempty"`
	Input               [][]string           `json:"input,omitempty"`
	Data                promptData           `json:"data"`
	ExternalInformation *externalInformation `json:"external_information,omitempty"`
}

type promptData struct {
	Instruction  string `json:"instruction,omitempty"`
	InputPrefix  string `json:"input_prefix,omitempty"`
	OutputPrefix string `json:"output_prefix,omitempty"`
}

type externalInformation struct {
	ExternalPromptID      string          `json:"external_prompt_id"`
	ExternalModelID       string          `json:"external_model_id"`
	ExternalModelProvider string          `json:"external_model_provider"`
	ExternalPrompt        *externalPrompt `json:"external_prompt,omitempty"`
	ExternalModel         *externalModel  `json:"external_model,omitempty"`
}

type externalPrompt struct {
	URL                   string         `json:"url,omitempty"`
	AdditionalInformation map[string]any `json:"additional_information,omitempty"`
}

type externalModel struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

type promptResponse struct {
	ID string `json:"id"`
}
