// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postprocess

import (
	"strings"
	"testing"

	"github.com/asgart-go/asgart/internal/model"
)

func TestFilterNsDropsHighNContent(t *testing.T) {
	strandData := []byte(strings.Repeat("N", 10) + strings.Repeat("A", 10))
	families := []model.ProtoSDsFamily{{
		{Left: 0, Right: 10, LeftLength: 10, RightLength: 10},
	}}
	out := FilterNs{}.Run(families, strandData)
	if len(out) != 0 {
		t.Fatalf("expected the all-N arm to be dropped, got %v", out)
	}
}

func TestFilterNsKeepsLowNContent(t *testing.T) {
	strandData := []byte(strings.Repeat("A", 20))
	families := []model.ProtoSDsFamily{{
		{Left: 0, Right: 10, LeftLength: 10, RightLength: 10},
	}}
	out := FilterNs{}.Run(families, strandData)
	if len(out) != 1 || len(out[0]) != 1 {
		t.Fatalf("expected the clean duplication to survive, got %v", out)
	}
}

func TestNormalizeSwapsReversedOrder(t *testing.T) {
	families := []model.ProtoSDsFamily{{
		{Left: 50, Right: 10, LeftLength: 5, RightLength: 8},
	}}
	out := Normalize{}.Run(families, make([]byte, 100))
	sd := out[0][0]
	if sd.Left != 10 || sd.Right != 50 || sd.LeftLength != 8 || sd.RightLength != 5 {
		t.Errorf("expected arms swapped, got %+v", sd)
	}
}

func TestNormalizeClipsOverrun(t *testing.T) {
	families := []model.ProtoSDsFamily{{
		{Left: 5, Right: 50, LeftLength: 20, RightLength: 10},
	}}
	out := Normalize{}.Run(families, make([]byte, 20))
	sd := out[0][0]
	if sd.LeftLength != 15 {
		t.Errorf("expected left length clipped to 15, got %d", sd.LeftLength)
	}
}

func TestReduceOverlapMergesOverlappingArms(t *testing.T) {
	family := model.ProtoSDsFamily{
		{Left: 0, Right: 100, LeftLength: 10, RightLength: 10},
		{Left: 5, Right: 105, LeftLength: 10, RightLength: 10},
	}
	out := reduceOverlap(family)
	if len(out) != 1 {
		t.Fatalf("expected the two overlapping duplications to merge, got %d: %+v", len(out), out)
	}
	merged := out[0]
	if merged.Left != 0 || merged.LeftLength != 15 {
		t.Errorf("unexpected merged left arm: start=%d length=%d", merged.Left, merged.LeftLength)
	}
	if merged.Right != 100 || merged.RightLength != 15 {
		t.Errorf("unexpected merged right arm: start=%d length=%d", merged.Right, merged.RightLength)
	}
}

func TestReduceOverlapDropsContainedDuplication(t *testing.T) {
	family := model.ProtoSDsFamily{
		{Left: 0, Right: 100, LeftLength: 20, RightLength: 20},
		{Left: 5, Right: 105, LeftLength: 5, RightLength: 5},
	}
	out := reduceOverlap(family)
	if len(out) != 1 {
		t.Fatalf("expected the contained duplication to be dropped, got %d: %+v", len(out), out)
	}
}

func TestReduceOverlapIsIdempotent(t *testing.T) {
	family := model.ProtoSDsFamily{
		{Left: 0, Right: 100, LeftLength: 10, RightLength: 10},
		{Left: 200, Right: 300, LeftLength: 10, RightLength: 10},
	}
	once := reduceOverlap(family)
	twice := reduceOverlap(once)
	if len(once) != len(twice) {
		t.Fatalf("expected a fixed point, got %d then %d", len(once), len(twice))
	}
}

func TestLevenshteinIdenticalArmsIsFullIdentity(t *testing.T) {
	strandData := []byte("ACGTACGTACGT")
	sd := model.ProtoSD{Left: 0, Right: 0, LeftLength: 8, RightLength: 8}
	got := identity(sd, strandData)
	if got != 100 {
		t.Errorf("expected 100%% identity for an arm matched against itself, got %v", got)
	}
}

func TestSortOrdersByLeftPosition(t *testing.T) {
	families := []model.ProtoSDsFamily{
		{{Left: 50}},
		{{Left: 10}},
	}
	out := Sort{}.Run(families, nil)
	if out[0][0].Left != 10 || out[1][0].Left != 50 {
		t.Errorf("expected families ordered by left position, got %+v", out)
	}
}
