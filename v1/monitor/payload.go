package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/labrador-ai/watsonx/v1/openscale"
	"github.com/labrador-ai/watsonx/v1/tracer"
)

// Response fields copied from a PayloadRecord into the logged results.
var responseFields = []string{"generated_text", "input_token_count", "generated_token_count"}

// PayloadRecord is one scoring record: feature field values plus the optional
// generated_text, input_token_count and generated_token_count.
type PayloadRecord map[string]any

// PayloadLogging stores records into the payload logging data set of the
// subscription in a single request.
func (m *Monitor) PayloadLogging(ctx context.Context, records []PayloadRecord, subscriptionID string) error {
	ctx, span := m.tracer.Start(ctx, "monitor.payload_logging", trace.WithAttributes(
		attribute.String("subscription.id", subscriptionID),
		attribute.Int("payload.records", len(records)),
	))
	defer span.End()

	fail := func(msg string, err error) error {
		m.logger.ErrorWithContext(ctx, msg, err, map[string]interface{}{"subscription_id": subscriptionID})
		tracer.RecordError(span, err)
		return err
	}

	svc, err := m.monitoringService(ctx)
	if err != nil {
		tracer.RecordError(span, err)
		return err
	}

	sub, err := svc.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return fail("Error getting subscription", err)
	}

	dataSets, err := svc.ListDataSets(ctx, openscale.DataSetFilter{
		Type:       openscale.DataSetTypePayloadLogging,
		TargetID:   subscriptionID,
		TargetType: openscale.TargetSubscription,
	})
	if err != nil {
		return fail("Error listing payload logging data sets", err)
	}
	if len(dataSets) == 0 {
		return fail("Payload logging data set not found", fmt.Errorf("%w: subscription %s", ErrNoDataSet, subscriptionID))
	}
	dataSetID := dataSets[0].Metadata.ID

	if err := svc.StoreRecords(ctx, dataSetID, convertRecords(records, sub.FeatureFields())); err != nil {
		return fail("Error storing payload records", err)
	}

	m.recorder.AddPayloadRecords(len(records))
	m.logger.DebugWithContext(ctx, "Payload records stored", nil, map[string]interface{}{
		"subscription_id": subscriptionID,
		"data_set_id":     dataSetID,
		"records":         len(records),
	})
	return nil
}

// convertRecords shapes records into the payload logging envelope.
func convertRecords(records []PayloadRecord, featureFields []string) []openscale.PayloadRecord {
	out := make([]openscale.PayloadRecord, 0, len(records))
	for _, rec := range records {
		vars := make(map[string]string, len(featureFields))
		for _, field := range featureFields {
			vars[field] = stringify(rec[field])
		}

		result := make(map[string]any, len(responseFields))
		for _, field := range responseFields {
			if v, ok := rec[field]; ok && truthy(v) {
				result[field] = v
			}
		}

		out = append(out, openscale.PayloadRecord{
			Request:  openscale.PayloadRequest{Parameters: openscale.PayloadParameters{TemplateVariables: vars}},
			Response: openscale.PayloadResponse{Results: []map[string]any{result}},
		})
	}
	return out
}

// stringify renders a feature value; nil becomes "".
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// truthy reports whether v is set to a non-empty, non-zero value.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t != ""
		}
		return f != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	default:
		return !rv.IsZero()
	}
}
