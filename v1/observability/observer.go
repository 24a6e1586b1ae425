package observability

import "time"

// OperationContext describes a single operation performed against a vendor service.
type OperationContext struct {
	// Component is the client that performed the operation, e.g. "openscale".
	Component string

	// Operation is the logical operation name, e.g. "execute_prompt_setup".
	Operation string

	// Resource is the primary resource targeted (asset id, data set id, ...).
	Resource string

	// SubResource is an optional secondary resource.
	SubResource string

	// Duration is the wall time of the operation.
	Duration time.Duration

	// Error is the error returned by the operation, or nil on success.
	Error error

	// Size is the number of items or bytes transferred, when meaningful.
	Size int64

	// Metadata carries additional operation-specific information.
	Metadata map[string]interface{}
}

// Observer receives notifications about completed operations.
//
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}

// Status returns "success" or "error" for the operation.
func (o OperationContext) Status() string {
	if o.Error != nil {
		return "error"
	}
	return "success"
}
