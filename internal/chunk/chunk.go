// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunk partitions a strand into ranges that can be scanned by
// the automaton independently, dispatches one goroutine per chunk
// (bounded by RunSettings.Threads), and remaps each chunk's results
// back into strand-global forward-strand coordinates.
package chunk

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/asgart-go/asgart/internal/automaton"
	"github.com/asgart-go/asgart/internal/logging"
	"github.com/asgart-go/asgart/internal/model"
	"github.com/asgart-go/asgart/internal/progress"
	"github.com/asgart-go/asgart/internal/searcher"
	"github.com/asgart-go/asgart/internal/strand"
	"github.com/asgart-go/asgart/internal/sufarray"
)

// nRunThreshold is the length a run of N bases must exceed to be
// treated as a chunk boundary rather than scanned through.
const nRunThreshold = 5000

// Range is a needle range to scan, in forward-strand global coordinates.
type Range = model.Segment

// FindChunks partitions data into scan ranges, splitting at every run of
// more than nRunThreshold consecutive N's found in data. Coordinates are
// relative to data.
func FindChunks(data []byte) []Range {
	runs := strand.NRuns(data, nRunThreshold+1)
	if len(runs) == 0 {
		return []Range{{Start: 0, End: len(data)}}
	}
	var chunks []Range
	pos := 0
	for _, r := range runs {
		if r.Start > pos {
			chunks = append(chunks, Range{Start: pos, End: r.Start})
		}
		pos = r.End
	}
	if pos < len(data) {
		chunks = append(chunks, Range{Start: pos, End: len(data)})
	}
	return chunks
}

// findGlobalChunks partitions strandData into scan ranges in
// strand-global coordinates, splitting both at fragment boundaries (so
// no chunk spans two input records) and at long N runs within each
// fragment. With no fragments given, it falls back to chunking the
// whole of strandData directly.
func findGlobalChunks(strandData []byte, fragments []model.FragmentRange) []Range {
	if len(fragments) == 0 {
		return FindChunks(strandData)
	}
	var chunks []Range
	for _, f := range fragments {
		sub := strandData[f.Position : f.Position+f.Length]
		for _, c := range FindChunks(sub) {
			chunks = append(chunks, Range{Start: f.Position + c.Start, End: f.Position + c.End})
		}
	}
	return chunks
}

// Orientation tags which transform of the needle (the chunk being
// scanned) a family of results was found with.
type Orientation struct {
	Reversed, Complemented bool
}

// Run scans every chunk of the reference strand against the single
// orientation settings.Reverse/settings.Complement select, and returns
// every family found, remapped to strand-global forward-strand
// coordinates. strandData must already carry its sentinel; sa and srch
// must have been built over it. fragments splits chunking at input
// record boundaries. log receives periodic progress lines; pass nil to
// disable progress reporting.
func Run(ctx context.Context, strandData []byte, fragments []model.FragmentRange, sa sufarray.SA, srch *searcher.Searcher, settings model.RunSettings, log *logging.Logger) ([]model.ProtoSDsFamily, error) {
	o := Orientation{Reversed: settings.Reverse, Complemented: settings.Complement}

	chunks := findGlobalChunks(strandData, fragments)

	g, ctx := errgroup.WithContext(ctx)
	threads := settings.Threads
	if threads > 0 {
		g.SetLimit(threads)
	}

	chunkResults := make([][]model.ProtoSDsFamily, len(chunks))
	progressChunks := make([]*progress.Chunk, len(chunks))
	for i, c := range chunks {
		progressChunks[i] = &progress.Chunk{Total: c.End - c.Start}
	}

	var monitor *progress.Monitor
	if log != nil {
		monitor = progress.NewMonitor(progressChunks, 500*time.Millisecond, log)
		defer monitor.Stop()
	}

	for ci, c := range chunks {
		ci, c := ci, c
		pc := progressChunks[ci]
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			needle := transform(strandData[c.Start:c.End], o)
			families := automaton.Search(ci, needle, c.Start, strandData, sa, srch, &pc.Scanned, settings)
			chunkResults[ci] = remap(families, c, o)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var families []model.ProtoSDsFamily
	for _, cf := range chunkResults {
		families = append(families, cf...)
	}
	return families, nil
}

// transform returns the view of chunkData that orientation o should be
// scanned against.
func transform(chunkData []byte, o Orientation) []byte {
	switch {
	case o.Reversed && o.Complemented:
		return strand.ReverseComplement(chunkData)
	case o.Reversed:
		return strand.Reverse(chunkData)
	case o.Complemented:
		return strand.Complement(chunkData)
	default:
		return chunkData
	}
}

// remap rewrites proto-SD left-arm coordinates, which are relative to a
// chunk of a possibly-transformed needle, back into forward-strand
// global coordinates, and tags the orientation that produced them. The
// right arm is already in forward-strand global coordinates: only the
// needle, never the reference strand searched against, is transformed.
func remap(families []model.ProtoSDsFamily, c Range, o Orientation) []model.ProtoSDsFamily {
	out := make([]model.ProtoSDsFamily, len(families))
	for i, fam := range families {
		remapped := make(model.ProtoSDsFamily, len(fam))
		for j, sd := range fam {
			if !o.Reversed {
				sd.Left += c.Start
			} else {
				sd.Left = c.End - sd.Left - sd.LeftLength
			}
			sd.Reversed = o.Reversed
			sd.Complemented = o.Complemented
			remapped[j] = sd
		}
		out[i] = remapped
	}
	return out
}
