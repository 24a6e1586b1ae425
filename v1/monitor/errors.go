package monitor

import "errors"

var (
	// ErrInvalidConfig reports a Config that cannot identify one container or
	// reach the services.
	ErrInvalidConfig = errors.New("monitor: invalid configuration")

	// ErrDependencyMissing reports a service factory that was not provided.
	ErrDependencyMissing = errors.New("monitor: service dependency missing")

	// ErrNoDataMart is returned when an instance mapping is needed but no data
	// mart exists. A data mart must be provisioned by an operator, so the
	// error also matches ErrInvalidConfig.
	ErrNoDataMart = errors.New("monitor: no data mart available for instance mapping")

	// ErrNoDataSet is returned when a subscription has no payload logging data set.
	ErrNoDataSet = errors.New("monitor: payload logging data set not found")

	// ErrInvalidPrompt reports a PromptTemplate missing required fields.
	ErrInvalidPrompt = errors.New("monitor: invalid prompt template")
)
