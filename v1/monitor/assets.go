package monitor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/labrador-ai/watsonx/v1/factsheets"
)

// Supported task ids.
const (
	TaskRAG           = "retrieval_augmented_generation"
	TaskSummarization = "summarization"
)

const detachedPromptPrefix = "detached_prompt_"

// Kind is the kind of prompt-template asset a Monitor registers.
type Kind int

const (
	// KindNative is a prompt template bound to a watsonx.ai foundation model.
	KindNative Kind = iota
	// KindDetached is a prompt template of an externally hosted model.
	KindDetached
)

func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindDetached:
		return "detached"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// assetIDField is the JSON key of the asset id in a ProvisionResult.
func (k Kind) assetIDField() string {
	if k == KindDetached {
		return "detached_prompt_template_asset_id"
	}
	return "prompt_template_asset_id"
}

// PromptTemplate describes the prompt template to register and monitor.
type PromptTemplate struct {
	// Name, ModelID and TaskID are required.
	Name    string
	ModelID string
	TaskID  string

	Description     string
	ModelParameters map[string]any

	// PromptVariables are the names of the template variables.
	PromptVariables []string

	PromptInstruction string
	InputText         string
	InputPrefix       string
	OutputPrefix      string

	// Version is recorded as the model version number of the asset.
	Version string

	// ContextFields and QuestionField are used by TaskRAG only.
	ContextFields []string
	QuestionField string

	// External is required by detached monitors and ignored otherwise.
	External *ExternalModel
}

// ExternalModel describes a model hosted outside watsonx.ai.
type ExternalModel struct {
	// Provider is required, e.g. "AWS Bedrock".
	Provider string

	ModelName      string
	ModelURL       string
	PromptURL      string
	AdditionalInfo map[string]any
}

func (p PromptTemplate) validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidPrompt)
	case p.ModelID == "":
		return fmt.Errorf("%w: model_id is required", ErrInvalidPrompt)
	case p.TaskID != TaskRAG && p.TaskID != TaskSummarization:
		return fmt.Errorf("%w: task_id must be %q or %q, got %q", ErrInvalidPrompt, TaskRAG, TaskSummarization, p.TaskID)
	}
	return nil
}

// promptRequest builds the fields shared by both asset kinds.
func (p PromptTemplate) promptRequest(cfg Config) factsheets.PromptRequest {
	r := factsheets.PromptRequest{
		ContainerID:     cfg.ContainerID(),
		ContainerType:   cfg.ContainerType(),
		Name:            p.Name,
		Description:     p.Description,
		ModelID:         p.ModelID,
		TaskID:          p.TaskID,
		ModelParameters: p.ModelParameters,
		PromptVariables: p.PromptVariables,
		Instruction:     p.PromptInstruction,
		InputText:       p.InputText,
		InputPrefix:     p.InputPrefix,
		OutputPrefix:    p.OutputPrefix,
	}
	if p.Version != "" {
		r.ModelVersion = map[string]string{"number": p.Version}
	}
	return r
}

// assetKind registers one kind of prompt-template asset.
type assetKind interface {
	kind() Kind
	validate(p PromptTemplate) error
	register(ctx context.Context, r AssetRegistrar, req factsheets.PromptRequest, p PromptTemplate) (string, error)
}

type nativeAsset struct{}

func (nativeAsset) kind() Kind { return KindNative }

func (nativeAsset) validate(p PromptTemplate) error {
	return p.validate()
}

func (nativeAsset) register(ctx context.Context, r AssetRegistrar, req factsheets.PromptRequest, _ PromptTemplate) (string, error) {
	return r.CreatePrompt(ctx, req)
}

type detachedAsset struct {
	newPromptID func() string
}

func newDetachedAsset() detachedAsset {
	return detachedAsset{newPromptID: func() string {
		return detachedPromptPrefix + uuid.NewString()
	}}
}

func (detachedAsset) kind() Kind { return KindDetached }

func (detachedAsset) validate(p PromptTemplate) error {
	if err := p.validate(); err != nil {
		return err
	}
	if p.External == nil || p.External.Provider == "" {
		return fmt.Errorf("%w: external model provider is required", ErrInvalidPrompt)
	}
	return nil
}

func (d detachedAsset) register(ctx context.Context, r AssetRegistrar, req factsheets.PromptRequest, p PromptTemplate) (string, error) {
	req.External = &factsheets.ExternalInformation{
		PromptID:       d.newPromptID(),
		ModelID:        p.ModelID,
		ModelProvider:  p.External.Provider,
		ModelName:      p.External.ModelName,
		ModelURL:       p.External.ModelURL,
		PromptURL:      p.External.PromptURL,
		AdditionalInfo: p.External.AdditionalInfo,
	}
	return r.CreateDetachedPrompt(ctx, req)
}
