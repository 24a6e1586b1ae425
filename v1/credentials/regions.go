package credentials

import (
	"fmt"
	"sort"
)

// DefaultRegion is used when no region is configured.
const DefaultRegion = "us-south"

// IAMTokenURL is the IBM Cloud IAM token endpoint used in API-key mode.
const IAMTokenURL = "https://iam.cloud.ibm.com/identity/token"

// Region holds the IBM Cloud endpoints of one region.
type Region struct {
	Name       string
	Factsheets string
	WML        string
	OpenScale  string
}

var regions = map[string]Region{
	"us-south": {
		Name:       "us-south",
		Factsheets: "https://api.dataplatform.cloud.ibm.com",
		WML:        "https://us-south.ml.cloud.ibm.com",
		OpenScale:  "https://api.aiopenscale.cloud.ibm.com",
	},
	"eu-de": {
		Name:       "eu-de",
		Factsheets: "https://api.eu-de.dataplatform.cloud.ibm.com",
		WML:        "https://eu-de.ml.cloud.ibm.com",
		OpenScale:  "https://eu-de.api.aiopenscale.cloud.ibm.com",
	},
	"au-syd": {
		Name:       "au-syd",
		Factsheets: "https://api.au-syd.dai.cloud.ibm.com",
		WML:        "https://au-syd.ml.cloud.ibm.com",
		OpenScale:  "https://au-syd.api.aiopenscale.cloud.ibm.com",
	},
}

// LookupRegion returns the endpoints of name. An empty name selects DefaultRegion.
func LookupRegion(name string) (Region, error) {
	if name == "" {
		name = DefaultRegion
	}
	r, ok := regions[name]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownRegion, name, RegionNames())
	}
	return r, nil
}

// RegionNames lists the supported regions in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
