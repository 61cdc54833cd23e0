// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// User directory metrics
	IncUserRegistered()
	IncLoginSucceeded()
	IncLoginFailed()
	IncPasswordReset()

	// Business catalog metrics
	IncBusinessCreated()
	IncBusinessUpdated()
	IncBusinessDeleted()

	// Review ledger metrics
	IncReviewAdded()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
