package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts handled input and frame timings.
type Metrics struct {
	keyCount    atomic.Uint64
	frameCount  atomic.Uint64
	frameTotal  atomic.Int64
	frameMax    atomic.Int64
	reloadCount atomic.Uint64
	startTime   time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordKey records one dispatched key event.
func (m *Metrics) RecordKey() {
	m.keyCount.Add(1)
}

// RecordReload records one applied configuration reload.
func (m *Metrics) RecordReload() {
	m.reloadCount.Add(1)
}

// RecordFrame records how long one redraw took.
func (m *Metrics) RecordFrame(d time.Duration) {
	ns := d.Nanoseconds()
	m.frameCount.Add(1)
	m.frameTotal.Add(ns)
	for {
		old := m.frameMax.Load()
		if ns <= old || m.frameMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Keys     uint64
	Frames   uint64
	Reloads  uint64
	FrameAvg time.Duration
	FrameMax time.Duration
	Uptime   time.Duration
}

// Snapshot returns the current values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Keys:     m.keyCount.Load(),
		Frames:   m.frameCount.Load(),
		Reloads:  m.reloadCount.Load(),
		FrameMax: time.Duration(m.frameMax.Load()),
		Uptime:   time.Since(m.startTime),
	}
	if s.Frames > 0 {
		s.FrameAvg = time.Duration(m.frameTotal.Load() / int64(s.Frames))
	}
	return s
}
