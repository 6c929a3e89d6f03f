// Package constants holds shared configuration constants.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Media storage provider names accepted in configuration.
const (
	StorageProviderLocal = "local"
	StorageProviderGCS   = "gcs"
)
