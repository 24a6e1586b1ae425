// Package observability defines the hook that the watsonx clients use to
// report every vendor operation they perform.
//
// Each client (factsheets, wml, openscale, embedding) accepts an optional
// Observer. After every remote call the client emits an OperationContext
// describing the component, the operation, the resource it targeted, how long
// it took and whether it failed. The metrics package ships a Prometheus-backed
// implementation; tests usually record operations in memory.
//
// A nil Observer is always valid and disables reporting.
package observability
