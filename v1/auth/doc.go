// Package auth implements the bearer-token authenticators used to reach the
// watsonx services.
//
//   - IAMAuthenticator exchanges an IBM Cloud API key for an IAM access token.
//   - CloudPakAuthenticator obtains a Cloud Pak for Data platform token with
//     username/password or username/API key, optionally through the IAM
//     bedrock identity provider of CP4D 4.0.x clusters.
//
// Both cache the token until shortly before it expires. Concurrent refreshes
// are collapsed into a single request, so one authenticator can be shared by
// several service clients.
package auth
