// Package envcfg models the environment configuration record: the ordered
// table of key/value entries written into the azd environment.
//
// # Overview
//
// The key set is fixed. Non-sensitive default values are embedded in the
// binary (data/production.yaml); the two sensitive entries —
// AZURE_SUBSCRIPTION_ID and AZURE_AI_PROJECT_RESOURCE_ID — default to empty
// and must be supplied through a local values file so they never live in
// version control.
//
// # Values Files
//
// A values file is a flat YAML mapping from known key to value:
//
//	AZURE_SUBSCRIPTION_ID: 00000000-0000-0000-0000-000000000000
//	AZURE_AI_PROJECT_RESOURCE_ID: /subscriptions/.../projects/my-project
//	AZURE_LOCATION: westus3
//
// envprov.local.yaml is auto-discovered in the working directory; an
// explicit --values flag takes precedence over discovery. Unknown keys are
// rejected with a nearest-key suggestion.
//
// # Validation
//
// Validate checks structural properties only: required entries present,
// subscription identifier is a UUID, image tag matches the OCI tag grammar,
// boolean flags parse, capacity is a positive integer. Value semantics
// (whether a region exists, whether the model is available there) are left
// to the deployment itself.
package envcfg
