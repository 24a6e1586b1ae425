// Package wml is a client for the watsonx.ai runtime deployment API.
//
// Only prompt-template deployments are supported: CreateDeployment deploys a
// registered prompt-template asset into a deployment space, either bound to a
// watsonx.ai foundation model or detached from the platform.
package wml
