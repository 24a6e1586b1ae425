package openscale

import (
	"fmt"
	"net/url"

	"github.com/oapi-codegen/runtime"
)

// queryParam is one optional query parameter; empty values are skipped.
type queryParam struct {
	name  string
	value string
}

// formQuery styles params as form/explode query parameters.
func formQuery(params ...queryParam) (url.Values, error) {
	query := url.Values{}
	for _, p := range params {
		if p.value == "" {
			continue
		}
		frag, err := runtime.StyleParamWithLocation("form", true, p.name, runtime.ParamLocationQuery, p.value)
		if err != nil {
			return nil, fmt.Errorf("style query parameter %s: %w", p.name, err)
		}
		parsed, err := url.ParseQuery(frag)
		if err != nil {
			return nil, fmt.Errorf("parse query parameter %s: %w", p.name, err)
		}
		for k, v := range parsed {
			query[k] = append(query[k], v...)
		}
	}
	return query, nil
}

// pathParam styles a path segment with the simple style.
func pathParam(name, value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("openscale: %s is required", name)
	}
	seg, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return "", fmt.Errorf("style path parameter %s: %w", name, err)
	}
	return seg, nil
}
