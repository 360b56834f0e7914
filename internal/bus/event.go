package bus

import "time"

// Event kinds published by the daemon. Subscribers filter by prefix, so
// "sample." receives both sample events.
const (
	KindSampleSaved   = "sample.saved"
	KindSampleDeleted = "sample.deleted"
	KindStatusChanged = "daemon.status_changed"
)

// Event represents a domain event published on the bus.
type Event struct {
	ID        string
	Kind      string
	Timestamp time.Time
	Payload   any
}

// SampleRef is the payload of sample events.
type SampleRef struct {
	ID         string
	CharCount  int
	BlockCount int
}
