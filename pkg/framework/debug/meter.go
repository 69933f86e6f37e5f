package debug

import (
	"sync"
	"time"
)

// Meter accumulates per-block processing times so a host can check the real
// time budget. Record is cheap but takes a mutex; call it from the host's
// feeder loop, never from inside the audio callback itself.
type Meter struct {
	mu    sync.Mutex
	count uint64
	total time.Duration
	min   time.Duration
	max   time.Duration
}

// MeterStats is a snapshot of a Meter.
type MeterStats struct {
	Count uint64
	Avg   time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Record adds one block's processing time.
func (m *Meter) Record(elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.count == 0 || elapsed < m.min {
		m.min = elapsed
	}
	if elapsed > m.max {
		m.max = elapsed
	}
	m.count++
	m.total += elapsed
}

// Time measures fn and records the elapsed time.
func (m *Meter) Time(fn func()) {
	start := time.Now()
	fn()
	m.Record(time.Since(start))
}

// Stats returns a snapshot of the recorded timings.
func (m *Meter) Stats() MeterStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := MeterStats{Count: m.count, Min: m.min, Max: m.max}
	if m.count > 0 {
		s.Avg = m.total / time.Duration(m.count)
	}
	return s
}

// Reset clears all recorded timings.
func (m *Meter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count = 0
	m.total = 0
	m.min = 0
	m.max = 0
}
