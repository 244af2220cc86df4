package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	AccountsCreated uint64
	LoginsSucceeded uint64
	LoginsFailed    uint64
	RecadosCreated  uint64
	RecadosUpdated  uint64
	RecadosDeleted  uint64
}

// InMemoryRecorder stores metrics in memory. Used by the debug metrics
// endpoint and by tests.
type InMemoryRecorder struct {
	accountsCreated uint64
	loginsSucceeded uint64
	loginsFailed    uint64
	recadosCreated  uint64
	recadosUpdated  uint64
	recadosDeleted  uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		AccountsCreated: atomic.LoadUint64(&m.accountsCreated),
		LoginsSucceeded: atomic.LoadUint64(&m.loginsSucceeded),
		LoginsFailed:    atomic.LoadUint64(&m.loginsFailed),
		RecadosCreated:  atomic.LoadUint64(&m.recadosCreated),
		RecadosUpdated:  atomic.LoadUint64(&m.recadosUpdated),
		RecadosDeleted:  atomic.LoadUint64(&m.recadosDeleted),
	}
}

// IncAccountCreated increments the accounts-created counter.
func (m *InMemoryRecorder) IncAccountCreated() {
	atomic.AddUint64(&m.accountsCreated, 1)
}

// IncLogin increments the login counter for the given status.
func (m *InMemoryRecorder) IncLogin(status string) {
	if status == "success" {
		atomic.AddUint64(&m.loginsSucceeded, 1)
		return
	}
	atomic.AddUint64(&m.loginsFailed, 1)
}

// IncRecadoCreated increments the recados-created counter.
func (m *InMemoryRecorder) IncRecadoCreated() {
	atomic.AddUint64(&m.recadosCreated, 1)
}

// IncRecadoUpdated increments the recados-updated counter.
func (m *InMemoryRecorder) IncRecadoUpdated() {
	atomic.AddUint64(&m.recadosUpdated, 1)
}

// IncRecadoDeleted increments the recados-deleted counter.
func (m *InMemoryRecorder) IncRecadoDeleted() {
	atomic.AddUint64(&m.recadosDeleted, 1)
}
