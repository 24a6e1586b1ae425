// Package openscale is a client for the Watson OpenScale v2 monitoring API,
// limited to what prompt-template monitoring needs:
//
//   - prompt setup (ExecutePromptSetup), which creates the subscription and the
//     generative AI quality monitor of a prompt-template asset and waits until
//     the setup finishes;
//   - data marts and instance mappings (ListDataMarts, AddInstanceMapping),
//     used to bind a data mart to a project or space;
//   - subscriptions and data sets (GetSubscription, ListDataSets), used to
//     locate the payload logging table of a subscription;
//   - payload records (StoreRecords).
//
// Query and path parameters are styled with the oapi-codegen runtime so the
// encoding matches the OpenAPI description of the service (form/explode for
// queries, simple for path segments).
//
// Errors returned by the service are *restclient.APIError values. A prompt
// setup that ends in the "ERROR" state is reported as ErrPromptSetupFailed.
package openscale
