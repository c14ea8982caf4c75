// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package postprocess runs the ordered cleanup pipeline over the raw
// families of proto-duplications the chunk driver returns: dropping
// low-confidence hits, canonicalizing arm order, merging overlapping
// arms, optionally scoring identity, and sorting for output.
package postprocess

import "github.com/asgart-go/asgart/internal/model"

// Stage is one step of the post-processing pipeline. Implementations
// must not mutate the families slice passed to them; they return the
// (possibly smaller, possibly reordered) replacement.
type Stage interface {
	Name() string
	Run(families []model.ProtoSDsFamily, strandData []byte) []model.ProtoSDsFamily
}

// Pipeline runs each stage in order over families, logging nothing
// itself: callers that want progress reporting wrap Run calls.
type Pipeline []Stage

// Run applies every stage in order.
func (p Pipeline) Run(families []model.ProtoSDsFamily, strandData []byte) []model.ProtoSDsFamily {
	for _, stage := range p {
		families = stage.Run(families, strandData)
	}
	return families
}

// Default returns the standard stage order: FilterNs, Normalize,
// ReduceOverlap, then Sort. ComputeScore is inserted by the caller just
// before Sort only when settings.ComputeScore is set, since it is the
// one expensive, opt-in stage.
func Default() Pipeline {
	return Pipeline{FilterNs{}, Normalize{}, ReduceOverlap{}, Sort{}}
}
