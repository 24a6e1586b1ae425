// Package tracer configures OpenTelemetry tracing for the watsonx
// integration packages.
//
// NewClient installs a global TracerProvider (optionally exporting spans over
// OTLP/HTTP) and a W3C trace-context propagator. The monitor package starts
// its spans from the global provider, so installing a Tracer is all that is
// needed to get one span per provisioning step.
//
//	t := tracer.NewClient(tracer.Config{ServiceName: "labrador", EnableExport: true}, log)
//	ctx, span := t.StartSpan(ctx, "create-monitor")
//	defer span.End()
//
// # Configuration
//
//	TRACER_SERVICE_NAME=labrador
//	TRACER_APP_ENV=production
//	TRACER_ENABLE_EXPORT=true
//	TRACER_ENDPOINT=otel-collector:4318   # optional, else OTEL_EXPORTER_OTLP_* env
//	TRACER_INSECURE=true
package tracer
