// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progress

import (
	"io"
	"testing"
	"time"

	"github.com/asgart-go/asgart/internal/logging"
)

func TestPercentAggregatesAcrossChunks(t *testing.T) {
	m := &Monitor{chunks: []*Chunk{
		{Total: 100, Scanned: 50},
		{Total: 100, Scanned: 25},
	}}
	got := m.percent()
	if got != 37.5 {
		t.Fatalf("percent() = %v, want 37.5", got)
	}
}

func TestPercentWithNoChunksIsComplete(t *testing.T) {
	m := &Monitor{}
	if got := m.percent(); got != 100 {
		t.Fatalf("percent() = %v, want 100", got)
	}
}

func TestStopTerminatesMonitor(t *testing.T) {
	log := logging.New(io.Discard, logging.Info)
	m := NewMonitor(nil, time.Hour, log)
	m.Stop()
}
