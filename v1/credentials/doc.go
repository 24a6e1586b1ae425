// Package credentials resolves the credentials used to reach the three
// watsonx services involved in prompt monitoring.
//
// Two modes exist:
//
//   - IBM Cloud: a plain API key plus one of the supported regions. Region
//     returns the factsheets, watsonx.ai runtime and OpenScale base URLs.
//
//   - Cloud Pak for Data (on-premises): a Bundle holding the cluster URL and
//     username/password or API key. Bundle.Views projects it into three
//     field-filtered views, one per downstream service:
//
//     monitoring:  url + {username, password, api_key, disable_ssl_verification}
//     asset:       service_url + {username, password, api_key, bedrock_url}
//     deployment:  url + {username, password, api_key, instance_id, version, bedrock_url}
//
// Only keys with a value are copied. An instance_id other than "icp" or
// "openshift" (case-insensitive) is dropped before projection.
package credentials
