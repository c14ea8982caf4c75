// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postprocess

import "github.com/asgart-go/asgart/internal/model"

// maxNContent is the largest fraction of N bases, across both arms,
// a duplication may carry before it is discarded as too uncertain.
const maxNContent = 0.2

// FilterNs drops any ProtoSD whose arms are more than maxNContent N,
// then drops any family left with no members.
type FilterNs struct{}

func (FilterNs) Name() string { return "filtering uncertain duplications" }

func (FilterNs) Run(families []model.ProtoSDsFamily, strandData []byte) []model.ProtoSDsFamily {
	out := make([]model.ProtoSDsFamily, 0, len(families))
	for _, family := range families {
		kept := make(model.ProtoSDsFamily, 0, len(family))
		for _, sd := range family {
			if nContent(sd, strandData) <= maxNContent {
				kept = append(kept, sd)
			}
		}
		if len(kept) > 0 {
			out = append(out, kept)
		}
	}
	return out
}

func nContent(sd model.ProtoSD, strandData []byte) float64 {
	ns, total := 0, 0
	count := func(start, length int) {
		end := start + length
		if end > len(strandData) {
			end = len(strandData)
		}
		for _, b := range strandData[start:end] {
			if b == 'N' {
				ns++
			}
			total++
		}
	}
	count(sd.Left, sd.LeftLength)
	count(sd.Right, sd.RightLength)
	if total == 0 {
		return 0
	}
	return float64(ns) / float64(total)
}
