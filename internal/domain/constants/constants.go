// Package constants holds configuration values compared across packages.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Role-absent policies for the route guard.
const (
	RoleAbsentAllow = "allow"
	RoleAbsentDefer = "defer"
)
