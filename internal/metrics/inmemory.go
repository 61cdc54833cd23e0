package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered   uint64
	LoginsSucceeded   uint64
	LoginsFailed      uint64
	PasswordsReset    uint64
	BusinessesCreated uint64
	BusinessesUpdated uint64
	BusinessesDeleted uint64
	ReviewsAdded      uint64
}

// InMemoryRecorder stores metrics in memory as atomic counters.
type InMemoryRecorder struct {
	usersRegistered   uint64
	loginsSucceeded   uint64
	loginsFailed      uint64
	passwordsReset    uint64
	businessesCreated uint64
	businessesUpdated uint64
	businessesDeleted uint64
	reviewsAdded      uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:   atomic.LoadUint64(&m.usersRegistered),
		LoginsSucceeded:   atomic.LoadUint64(&m.loginsSucceeded),
		LoginsFailed:      atomic.LoadUint64(&m.loginsFailed),
		PasswordsReset:    atomic.LoadUint64(&m.passwordsReset),
		BusinessesCreated: atomic.LoadUint64(&m.businessesCreated),
		BusinessesUpdated: atomic.LoadUint64(&m.businessesUpdated),
		BusinessesDeleted: atomic.LoadUint64(&m.businessesDeleted),
		ReviewsAdded:      atomic.LoadUint64(&m.reviewsAdded),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLoginSucceeded increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSucceeded() {
	atomic.AddUint64(&m.loginsSucceeded, 1)
}

// IncLoginFailed increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailed() {
	atomic.AddUint64(&m.loginsFailed, 1)
}

// IncPasswordReset increments the password reset counter.
func (m *InMemoryRecorder) IncPasswordReset() {
	atomic.AddUint64(&m.passwordsReset, 1)
}

// IncBusinessCreated increments the business created counter.
func (m *InMemoryRecorder) IncBusinessCreated() {
	atomic.AddUint64(&m.businessesCreated, 1)
}

// IncBusinessUpdated increments the business updated counter.
func (m *InMemoryRecorder) IncBusinessUpdated() {
	atomic.AddUint64(&m.businessesUpdated, 1)
}

// IncBusinessDeleted increments the business deleted counter.
func (m *InMemoryRecorder) IncBusinessDeleted() {
	atomic.AddUint64(&m.businessesDeleted, 1)
}

// IncReviewAdded increments the review counter.
func (m *InMemoryRecorder) IncReviewAdded() {
	atomic.AddUint64(&m.reviewsAdded, 1)
}
