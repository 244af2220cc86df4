package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncAccountCreated is a no-op.
func (n *NoopRecorder) IncAccountCreated() {}

// IncLogin is a no-op.
func (n *NoopRecorder) IncLogin(status string) {}

// IncRecadoCreated is a no-op.
func (n *NoopRecorder) IncRecadoCreated() {}

// IncRecadoUpdated is a no-op.
func (n *NoopRecorder) IncRecadoUpdated() {}

// IncRecadoDeleted is a no-op.
func (n *NoopRecorder) IncRecadoDeleted() {}
