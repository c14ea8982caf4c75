// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chunk

import (
	"context"
	"strings"
	"testing"

	"github.com/asgart-go/asgart/internal/model"
	"github.com/asgart-go/asgart/internal/searcher"
	"github.com/asgart-go/asgart/internal/sufarray"
)

func TestFindChunksSplitsOnLongNRuns(t *testing.T) {
	data := []byte("ACGT" + strings.Repeat("N", 6000) + "TTTT")
	chunks := FindChunks(data)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks around the N run, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != (Range{Start: 0, End: 4}) {
		t.Errorf("unexpected first chunk: %+v", chunks[0])
	}
}

func TestFindChunksNoSplitWithoutLongRun(t *testing.T) {
	data := []byte("ACGT" + strings.Repeat("N", 10) + "TTTT")
	chunks := FindChunks(data)
	if len(chunks) != 1 {
		t.Fatalf("expected a single chunk, got %d: %v", len(chunks), chunks)
	}
}

func TestFindGlobalChunksSplitsOnFragmentBoundary(t *testing.T) {
	strandData := []byte(strings.Repeat("A", 20) + strings.Repeat("T", 20))
	fragments := []model.FragmentRange{
		{Name: "chr1", Position: 0, Length: 20},
		{Name: "chr2", Position: 20, Length: 20},
	}
	chunks := findGlobalChunks(strandData, fragments)
	if len(chunks) != 2 {
		t.Fatalf("expected one chunk per fragment, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != (Range{Start: 0, End: 20}) || chunks[1] != (Range{Start: 20, End: 40}) {
		t.Fatalf("unexpected chunk boundaries: %v", chunks)
	}
}

func TestRunFindsDuplicationInSingleChunk(t *testing.T) {
	strandData := []byte(strings.Repeat("A", 30) + strings.Repeat("CATGCATG", 5) + strings.Repeat("A", 30) + "$")
	sa := sufarray.Build(strandData)
	srch := searcher.New(strandData, sa, 0)

	settings := model.RunSettings{ProbeSize: 8, MinDuplicationLength: 16, MaxCardinality: 1000, MaxGapSize: 100, Threads: 2}
	families, err := Run(context.Background(), strandData, nil, sa, srch, settings, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(families) == 0 {
		t.Fatalf("expected at least one family from the single chunk")
	}
}

func TestRunHonorsReverseOrientation(t *testing.T) {
	strandData := []byte(strings.Repeat("CATGCATG", 4) + "$")
	sa := sufarray.Build(strandData)
	srch := searcher.New(strandData, sa, 0)

	settings := model.RunSettings{ProbeSize: 8, MinDuplicationLength: 8, MaxCardinality: 1000, MaxGapSize: 100, Reverse: true}
	families, err := Run(context.Background(), strandData, nil, sa, srch, settings, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, fam := range families {
		for _, sd := range fam {
			if !sd.Reversed {
				t.Errorf("expected every result to be tagged reversed, got %+v", sd)
			}
		}
	}
}

func TestRunDefaultOrientationIsForward(t *testing.T) {
	strandData := []byte(strings.Repeat("CATGCATG", 4) + "$")
	sa := sufarray.Build(strandData)
	srch := searcher.New(strandData, sa, 0)

	settings := model.RunSettings{ProbeSize: 8, MinDuplicationLength: 8, MaxCardinality: 1000, MaxGapSize: 100}
	families, err := Run(context.Background(), strandData, nil, sa, srch, settings, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, fam := range families {
		for _, sd := range fam {
			if sd.Reversed || sd.Complemented {
				t.Errorf("expected forward-only results with no flags set, got %+v", sd)
			}
		}
	}
}
