package metrics

import "sync"

// Mock implements Recorder for tests. Safe for concurrent use.
type Mock struct {
	mu              sync.Mutex
	registrations   int
	logins          int
	matchesReported int
	matchesDeleted  int
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncRegistrations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registrations++
}

func (m *Mock) IncLogins() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins++
}

func (m *Mock) IncMatchesReported() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesReported++
}

func (m *Mock) IncMatchesDeleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesDeleted++
}

func (m *Mock) Registrations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registrations
}

func (m *Mock) Logins() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logins
}

func (m *Mock) MatchesReported() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesReported
}

func (m *Mock) MatchesDeleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesDeleted
}
