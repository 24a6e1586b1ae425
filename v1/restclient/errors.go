package restclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError is returned for any non-2xx response from a watsonx service.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is the vendor error code, e.g. "AIQCS0003E", when the body carries one.
	Code string

	// Message is the vendor error message, or the raw body when it could not be parsed.
	Message string

	// Method and URL identify the failed request.
	Method string
	URL    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s %s: status %d: %s: %s", e.Method, e.URL, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// errorBody covers the error envelopes returned by the watsonx services:
//
//	{"errors":[{"code":"...","message":"..."}],"trace":"..."}   (OpenScale, WML, WX)
//	{"code":"...","message":"..."}                              (CP4D gateway)
//	{"error":"...","errorMessage":"..."}                        (IAM)
type errorBody struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
	Code         json.RawMessage `json:"code"`
	Message      string          `json:"message"`
	Error        string          `json:"error"`
	ErrorMessage string          `json:"errorMessage"`
}

// NewAPIError builds an APIError from a non-2xx response body.
func NewAPIError(method, url string, status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Method: method, URL: url}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case len(parsed.Errors) > 0:
			apiErr.Code = parsed.Errors[0].Code
			apiErr.Message = parsed.Errors[0].Message
		case parsed.Message != "":
			apiErr.Code = strings.Trim(string(parsed.Code), `"`)
			apiErr.Message = parsed.Message
		case parsed.ErrorMessage != "":
			apiErr.Code = parsed.Error
			apiErr.Message = parsed.ErrorMessage
		case parsed.Error != "":
			apiErr.Message = parsed.Error
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
