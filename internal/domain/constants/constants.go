package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// CheckInCompletedEventType is the event type attribute of a committed check-in.
const CheckInCompletedEventType = "checkin.completed"
