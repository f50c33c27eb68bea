package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

// Monotonic turns a Clock into ledger timestamps: Unix nanoseconds that
// never decrease, even when the wall clock is stepped back.
type Monotonic struct {
	mu   sync.Mutex
	src  Clock
	last uint64
}

func NewMonotonic(src Clock) *Monotonic {
	return &Monotonic{src: src}
}

func (m *Monotonic) NowNanos() uint64 {
	var now uint64
	if n := m.src.Now().UnixNano(); n > 0 {
		now = uint64(n)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if now < m.last {
		now = m.last
	}
	m.last = now
	return now
}
