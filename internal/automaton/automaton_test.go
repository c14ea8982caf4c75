// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import (
	"strings"
	"testing"

	"github.com/asgart-go/asgart/internal/model"
	"github.com/asgart-go/asgart/internal/searcher"
	"github.com/asgart-go/asgart/internal/sufarray"
)

func build(t *testing.T, strand []byte) (sufarray.SA, *searcher.Searcher) {
	t.Helper()
	sa := sufarray.Build(strand)
	return sa, searcher.New(strand, sa, 0)
}

func TestTrivialMatch(t *testing.T) {
	strand := []byte(strings.Repeat("A", 40) + strings.Repeat("CATG", 8) + strings.Repeat("A", 40) + "$")
	sa, srch := build(t, strand)

	settings := model.RunSettings{ProbeSize: 8, MinDuplicationLength: 16, MaxCardinality: 1000, MaxGapSize: 100}
	var progress uint64
	families := Search(0, strand[:len(strand)-1], 0, strand, sa, srch, &progress, settings)

	var sds []model.ProtoSD
	for _, f := range families {
		sds = append(sds, f...)
	}
	if len(sds) == 0 {
		t.Fatalf("expected at least one duplication, got none")
	}
	for _, sd := range sds {
		if sd.LeftLength < 16 || sd.RightLength < 16 {
			t.Errorf("SD below minimum length: %+v", sd)
		}
		if sd.Left == sd.Right && sd.LeftLength == sd.RightLength {
			t.Errorf("self-match not excluded: %+v", sd)
		}
	}
}

func TestCardinalityCap(t *testing.T) {
	strand := []byte(strings.Repeat("CATGCATGCATGCATGCATG", 100) + "$")
	sa, srch := build(t, strand)

	settings := model.RunSettings{ProbeSize: 20, MinDuplicationLength: 16, MaxCardinality: 5, MaxGapSize: 100}
	var progress uint64
	families := Search(0, strand[:len(strand)-1], 0, strand, sa, srch, &progress, settings)

	if len(families) != 0 {
		t.Fatalf("expected no families under the cardinality cap, got %d", len(families))
	}
}

func TestEarlyExitOnShortNeedle(t *testing.T) {
	strand := []byte("ACGTACGT$")
	sa, srch := build(t, strand)
	settings := model.RunSettings{ProbeSize: 8, MinDuplicationLength: 1000, MaxCardinality: 10, MaxGapSize: 100}
	var progress uint64
	families := Search(0, strand[:len(strand)-1], 0, strand, sa, srch, &progress, settings)
	if families != nil {
		t.Fatalf("expected nil families for a needle shorter than the minimum length, got %v", families)
	}
}

func TestFilterMatchesForwardIsStrict(t *testing.T) {
	matches := []model.Segment{{Start: 10, End: 18}}
	out := filterMatches(matches, 5, 5, 100, false)
	if len(out) != 0 {
		t.Fatalf("forward filter should drop start == i+needleOffset, got %v", out)
	}

	matches = []model.Segment{{Start: 11, End: 19}}
	out = filterMatches(matches, 5, 5, 100, false)
	if len(out) != 1 {
		t.Fatalf("forward filter should keep start > i+needleOffset, got %v", out)
	}
}

func TestFilterMatchesReverseIsInclusive(t *testing.T) {
	// needleOffset + needleLen - i == boundary; reverse mode keeps >=.
	const needleOffset, needleLen, i = 0, 100, 40
	boundary := needleOffset + needleLen - i // 60
	matches := []model.Segment{{Start: boundary, End: boundary + 8}}
	out := filterMatches(matches, i, needleOffset, needleLen, true)
	if len(out) != 1 {
		t.Fatalf("reverse filter should keep start == boundary, got %v", out)
	}

	matches = []model.Segment{{Start: boundary - 1, End: boundary + 7}}
	out = filterMatches(matches, i, needleOffset, needleLen, true)
	if len(out) != 0 {
		t.Fatalf("reverse filter should drop start < boundary, got %v", out)
	}
}

func TestDistanceOverlapIsZero(t *testing.T) {
	a := model.Segment{Start: 10, End: 20}
	m := model.Segment{Start: 15, End: 25}
	if d := distance(a, m); d != 0 {
		t.Fatalf("overlapping segments should have zero distance, got %d", d)
	}
}

func TestDistanceGapIsMinimalEndpointDelta(t *testing.T) {
	a := model.Segment{Start: 0, End: 10}
	m := model.Segment{Start: 50, End: 60}
	if d := distance(a, m); d != 40 {
		t.Fatalf("expected gap of 40, got %d", d)
	}
}
