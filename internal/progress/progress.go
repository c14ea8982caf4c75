// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package progress reports chunk-scan advancement while the discovery
// engine runs. Each chunk owns an atomic counter the automaton updates
// as it scans; a monitor goroutine polls them periodically and logs a
// percentage line. There is no progress-bar library anywhere in the
// pack this is grounded on, so the monitor logs through
// internal/logging instead of rendering a bar in place.
package progress

import (
	"sync/atomic"
	"time"

	"github.com/asgart-go/asgart/internal/logging"
)

// Chunk is one unit of progress: Scanned is updated by the worker
// scanning it, Total is fixed at chunk creation time.
type Chunk struct {
	Total   int
	Scanned uint64
}

// Monitor polls a set of chunks and logs aggregate percentage
// complete until Stop is called.
type Monitor struct {
	chunks []*Chunk
	done   chan struct{}
}

// NewMonitor starts polling chunks at the given interval, logging
// through log.
func NewMonitor(chunks []*Chunk, interval time.Duration, log *logging.Logger) *Monitor {
	m := &Monitor{chunks: chunks, done: make(chan struct{})}
	go m.run(interval, log)
	return m
}

func (m *Monitor) run(interval time.Duration, log *logging.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			log.Infof("progress: %.1f%%", m.percent())
		case <-m.done:
			return
		}
	}
}

func (m *Monitor) percent() float64 {
	var total, scanned int64
	for _, c := range m.chunks {
		total += int64(c.Total)
		scanned += int64(atomic.LoadUint64(&c.Scanned))
	}
	if total == 0 {
		return 100
	}
	return 100 * float64(scanned) / float64(total)
}

// Stop terminates the monitor goroutine. Safe to call once.
func (m *Monitor) Stop() { close(m.done) }
