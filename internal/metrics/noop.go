package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncLoginSucceeded is a no-op.
func (n *NoopRecorder) IncLoginSucceeded() {}

// IncLoginFailed is a no-op.
func (n *NoopRecorder) IncLoginFailed() {}

// IncPasswordReset is a no-op.
func (n *NoopRecorder) IncPasswordReset() {}

// IncBusinessCreated is a no-op.
func (n *NoopRecorder) IncBusinessCreated() {}

// IncBusinessUpdated is a no-op.
func (n *NoopRecorder) IncBusinessUpdated() {}

// IncBusinessDeleted is a no-op.
func (n *NoopRecorder) IncBusinessDeleted() {}

// IncReviewAdded is a no-op.
func (n *NoopRecorder) IncReviewAdded() {}
