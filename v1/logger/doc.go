// Package logger provides the structured logger used across the watsonx
// integration packages.
//
// Logger wraps Uber's zap logger and exposes a small, uniform method set:
//
//	log.Info("Prompt template registered", nil, map[string]interface{}{
//		"asset_id": assetID,
//	})
//	log.Error("Error connecting to watsonx.governance (openscale)", err, nil)
//
// Every method takes a message, an optional error and any number of field
// maps. The *WithContext variants add the OpenTelemetry trace_id and span_id
// of the span carried by the context when tracing is enabled.
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error (default info)
//	LOGGER_ENABLE_TRACING=true      # add trace/span ids to *WithContext entries
//	LOGGER_SERVICE_NAME=labrador    # value of the "service" field
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(logger.NewConfig),
//	)
//
// FXModule provides *Logger and registers a shutdown hook that flushes
// buffered entries.
//
// All methods are safe for concurrent use.
package logger
