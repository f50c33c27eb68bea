//go:build unit

package clock_test

import (
	"testing"
	"time"

	"fleet-ledger/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestMonotonic(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	mock := clock.NewMockClock(start)
	m := clock.NewMonotonic(mock)

	first := m.NowNanos()
	assert.Equal(t, uint64(start.UnixNano()), first)

	mock.Add(-time.Hour)
	assert.Equal(t, first, m.NowNanos(), "wall clock stepped back")

	mock.Add(2 * time.Hour)
	assert.Equal(t, uint64(start.Add(time.Hour).UnixNano()), m.NowNanos())
}

func TestMonotonic_BeforeEpoch(t *testing.T) {
	m := clock.NewMonotonic(clock.NewMockClock(time.Unix(-10, 0)))
	assert.Zero(t, m.NowNanos())
}
