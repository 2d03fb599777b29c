// Package constants defines configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Session store backends
const (
	SessionBackendMemory   = "memory"
	SessionBackendPostgres = "postgres"
	SessionBackendPebble   = "pebble"
	SessionBackendJWT      = "jwt"
)

// Payment gateway providers
const (
	PaymentProviderStripe = "stripe"
	PaymentProviderLocal  = "local"
)
