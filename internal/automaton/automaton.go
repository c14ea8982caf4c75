// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package automaton grows pairs of collinear segments ("arms") from a
// stream of exact k-mer hits along a needle, subject to gap, cardinality
// and length constraints, and emits families of candidate duplications
// once every arm has deactivated.
package automaton

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/asgart-go/asgart/internal/model"
	"github.com/asgart-go/asgart/internal/searcher"
	"github.com/asgart-go/asgart/internal/sufarray"
)

// minParallelMatches is the smallest match-list size worth splitting
// across goroutines; below it the scheduling overhead would dominate.
const minParallelMatches = 8

// arm is a growing pair of intervals: one on the needle (left), one on
// the reference (right). Arms never leak outside a single Search call
// and are referenced only by index into the owning slice.
type arm struct {
	left, right model.Segment
	familyID    string
	active      bool
	dirty       bool
	gap         uint32
}

type opKind int

const (
	opExtend opKind = iota
	opNewArm
)

// operation is the result of evaluating one match against the current
// arm snapshot. Evaluation may run in parallel across matches;
// application to the arm list is always serial, extends before new
// arms.
type operation struct {
	kind        opKind
	armIdx      int
	lEnd, rEnd  int
	matchStart  int
	matchEnd    int
	needleStart int
}

// Search runs one activation of the automaton over needle, a chunk of
// the strand (or a transform of it), querying the reference strand via
// sa/srch for each probe. id seeds the family IDs this invocation mints.
// progress receives the needle offset currently being scanned.
func Search(
	id int,
	needle []byte,
	needleOffset int,
	strand []byte,
	sa sufarray.SA,
	srch *searcher.Searcher,
	progress *uint64,
	settings model.RunSettings,
) []model.ProtoSDsFamily {
	if len(needle) < settings.MinDuplicationLength {
		return nil
	}

	step := settings.ProbeSize / 2
	var arms []arm
	var families []model.ProtoSDsFamily
	familySeq := 1

	i := 0
	for i < len(needle)-settings.ProbeSize-step {
		i += step
		if progress != nil {
			atomic.StoreUint64(progress, uint64(i))
		}

		if needle[i] == 'N' {
			continue
		}

		matches := srch.Search(strand, sa, needle[i:i+settings.ProbeSize])
		matches = filterMatches(matches, i, needleOffset, len(needle), settings.Reverse)
		if len(matches) > settings.MaxCardinality {
			continue
		}

		for j := range arms {
			arms[j].dirty = false
		}

		ops := evaluateMatches(arms, matches, i, settings)

		for _, op := range ops {
			if op.kind == opExtend {
				arms[op.armIdx].left.End = op.lEnd
				arms[op.armIdx].right.End = op.rEnd
				arms[op.armIdx].dirty = true
				arms[op.armIdx].gap = 0
			}
		}
		for _, op := range ops {
			if op.kind == opNewArm {
				arms = append(arms, arm{
					left:     model.Segment{Start: op.needleStart, End: op.needleStart + settings.ProbeSize},
					right:    model.Segment{Start: op.matchStart, End: op.matchEnd},
					familyID: fmt.Sprintf("%d-%d", id, familySeq),
					active:   true,
				})
			}
		}

		for j := range arms {
			if arms[j].dirty {
				continue
			}
			arms[j].gap += uint32(step)
			if arms[j].gap >= settings.MaxGapSize {
				arms[j].active = false
			}
		}

		if len(arms) > 200 {
			kept := arms[:0]
			for _, a := range arms {
				if a.active || a.left.Len() >= settings.MinDuplicationLength || a.right.Len() >= settings.MinDuplicationLength {
					kept = append(kept, a)
				}
			}
			arms = kept
		}

		if len(arms) > 0 && allInactive(arms) {
			family := collectFamily(arms, settings.MinDuplicationLength)
			if len(family) > 0 {
				families = append(families, family)
			}
			arms = arms[:0]
			familySeq++
		}
	}

	return families
}

func allInactive(arms []arm) bool {
	for _, a := range arms {
		if a.active {
			return false
		}
	}
	return true
}

func collectFamily(arms []arm, minLen int) model.ProtoSDsFamily {
	var family model.ProtoSDsFamily
	for _, a := range arms {
		if a.right.Len() < minLen {
			continue
		}
		family = append(family, model.ProtoSD{
			Left:        a.left.Start,
			Right:       a.right.Start,
			LeftLength:  a.left.Len(),
			RightLength: a.right.Len(),
		})
	}
	return family
}

// filterMatches drops the self-hit and, depending on scan direction,
// matches that would only duplicate a symmetric pair already seen from
// the other side. The two branches are intentionally asymmetric
// (strict > in forward mode, >= in reverse mode): reversing the scan
// direction changes which side of a pair is found first.
func filterMatches(matches []model.Segment, i, needleOffset, needleLen int, reverse bool) []model.Segment {
	out := matches[:0]
	for _, m := range matches {
		if m.Start == i {
			continue
		}
		if !reverse {
			if m.Start <= i+needleOffset {
				continue
			}
		} else {
			if m.Start < needleOffset+needleLen-i {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// evaluateMatches computes, for each match, the operation it implies
// against the given arm snapshot. The predicate evaluation for each
// match is independent of the others and may run concurrently; only the
// final application to the real arm slice (done by the caller) is
// serialized.
func evaluateMatches(arms []arm, matches []model.Segment, i int, settings model.RunSettings) []operation {
	ops := make([]operation, len(matches))
	eval := func(k int) {
		ops[k] = tryExtend(arms, matches[k], i, settings)
	}
	if len(matches) < minParallelMatches {
		for k := range matches {
			eval(k)
		}
		return ops
	}

	var wg sync.WaitGroup
	for start := 0; start < len(matches); start += minParallelMatches {
		end := start + minParallelMatches
		if end > len(matches) {
			end = len(matches)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for k := start; k < end; k++ {
				eval(k)
			}
		}(start, end)
	}
	wg.Wait()
	return ops
}

func tryExtend(arms []arm, m model.Segment, i int, settings model.RunSettings) operation {
	for j, a := range arms {
		if !a.active {
			continue
		}
		gapLimit := settings.MaxGapSize
		if slack := uint32(float64(a.left.Len()) * 0.1); slack > gapLimit {
			gapLimit = slack
		}
		if uint32(distance(a.right, m)) < gapLimit && m.End > a.right.End {
			return operation{kind: opExtend, armIdx: j, lEnd: i + settings.ProbeSize, rEnd: m.End}
		}
	}
	return operation{kind: opNewArm, needleStart: i, matchStart: m.Start, matchEnd: m.End}
}

// distance is zero if a and m overlap, else the smaller of the two
// cross-endpoint gaps.
func distance(a, m model.Segment) int {
	if (m.Start >= a.Start && m.Start <= a.End) || (m.End >= a.Start && m.End <= a.End) {
		return 0
	}
	d1 := abs(a.Start - m.End)
	d2 := abs(a.End - m.Start)
	if d1 < d2 {
		return d1
	}
	return d2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
