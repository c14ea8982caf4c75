// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postprocess

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/asgart-go/asgart/internal/logging"
	"github.com/asgart-go/asgart/internal/model"
)

// ComputeScore fills in each ProtoSD's Identity as a Levenshtein-based
// percentage identity between its two arms. It is the one opt-in,
// expensive stage: callers only append it to the pipeline when
// RunSettings.ComputeScore is set.
//
// Arms are sliced half-open ([start, start+length)): a length field
// already gives the arm's full extent, so including one extra base
// past it would double-count the boundary.
type ComputeScore struct{}

func (ComputeScore) Name() string { return "computing identity scores" }

func (ComputeScore) Run(families []model.ProtoSDsFamily, strandData []byte) []model.ProtoSDsFamily {
	out := make([]model.ProtoSDsFamily, len(families))
	var wg sync.WaitGroup
	for i, family := range families {
		scored := make(model.ProtoSDsFamily, len(family))
		copy(scored, family)
		out[i] = scored
		wg.Add(1)
		go func(scored model.ProtoSDsFamily) {
			defer wg.Done()
			for j := range scored {
				scored[j].Identity = identity(scored[j], strandData)
			}
		}(scored)
	}
	wg.Wait()

	logIdentitySummary(out)
	return out
}

func identity(sd model.ProtoSD, strandData []byte) float32 {
	left := strandData[sd.Left : sd.Left+sd.LeftLength]
	right := strandData[sd.Right : sd.Right+sd.RightLength]
	dist := levenshtein(left, right)
	longest := sd.LeftLength
	if sd.RightLength > longest {
		longest = sd.RightLength
	}
	if longest == 0 {
		return 0
	}
	return float32(100 * (1 - float64(dist)/float64(longest)))
}

// levenshtein computes the classic edit distance between a and b with
// a two-row dynamic program.
func levenshtein(a, b []byte) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = minOf3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minOf3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// logIdentitySummary reports the distribution of identity scores
// across every scored duplication, for operators sanity-checking a
// run's parameters.
func logIdentitySummary(families []model.ProtoSDsFamily) {
	var scores []float64
	for _, family := range families {
		for _, sd := range family {
			scores = append(scores, float64(sd.Identity))
		}
	}
	if len(scores) == 0 {
		return
	}
	mean, std := stat.MeanStdDev(scores, nil)
	logging.Infof("identity scores: n=%d mean=%.1f stddev=%.1f", len(scores), mean, std)
}
