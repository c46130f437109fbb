// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted by the pubsub config section.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// ListLimit caps every list read. The storefront has no pagination, so an
// unbounded read would grow with the table.
const ListLimit = 100
