// Package restclient is the JSON-over-HTTP plumbing shared by the watsonx
// service clients (factsheets, wml, openscale, embedding).
//
// A Client owns the base URL, the *http.Client, an Authenticator that
// attaches the bearer token, and an optional observability.Observer. Do
// encodes the request body, sends it, decodes a 2xx response into out and
// converts anything else into an *APIError carrying the HTTP status, the
// vendor error code and message:
//
//	var out struct{ ID string `json:"id"` }
//	err := c.Do(ctx, restclient.Request{
//		Operation: "create_prompt",
//		Method:    http.MethodPost,
//		Path:      "/wx/v1/prompts",
//		Body:      body,
//	}, &out)
//
// Callers classify failures with errors.As:
//
//	var apiErr *restclient.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden { ... }
package restclient
