// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postprocess

import "github.com/asgart-go/asgart/internal/model"

// ReduceOverlap merges, within each family, any pair of duplications
// whose left arms overlap and whose right arms also overlap, and
// drops any duplication wholly contained in another. It iterates to a
// fixed point since merging two duplications can create a new overlap
// with a third.
type ReduceOverlap struct{}

func (ReduceOverlap) Name() string { return "reducing overlap" }

func (ReduceOverlap) Run(families []model.ProtoSDsFamily, strandData []byte) []model.ProtoSDsFamily {
	out := make([]model.ProtoSDsFamily, len(families))
	for i, family := range families {
		out[i] = reduceOverlap(family)
	}
	return out
}

func reduceOverlap(family model.ProtoSDsFamily) model.ProtoSDsFamily {
	news := reduceOnce(family)
	for len(news) < len(family) {
		family = news
		news = reduceOnce(family)
	}
	return news
}

func reduceOnce(family model.ProtoSDsFamily) model.ProtoSDsFamily {
	var news model.ProtoSDsFamily
toInsert:
	for _, x := range family {
		for i, y := range news {
			xlStart, xlLen := x.LeftPart()
			xrStart, xrLen := x.RightPart()
			ylStart, ylLen := y.LeftPart()
			yrStart, yrLen := y.RightPart()

			if subsegment(xlStart, xlLen, ylStart, ylLen) && subsegment(xrStart, xrLen, yrStart, yrLen) {
				continue toInsert
			}
			if subsegment(ylStart, ylLen, xlStart, xlLen) && subsegment(yrStart, yrLen, xrStart, xrLen) {
				news[i] = x
				continue toInsert
			}
			if overlaps(xlStart, xlLen, ylStart, ylLen) && overlaps(xrStart, xrLen, yrStart, yrLen) {
				news[i] = merge(x, y)
				continue toInsert
			}
		}
		news = append(news, x)
	}
	return news
}

// subsegment reports whether [xStart, xStart+xLen) lies entirely
// within [yStart, yStart+yLen).
func subsegment(xStart, xLen, yStart, yLen int) bool {
	return xStart >= yStart && xStart+xLen <= yStart+yLen
}

// overlaps reports whether two intervals share any position or touch
// end to start (endpoints inclusive), including when one lies inside
// the other.
func overlaps(xStart, xLen, yStart, yLen int) bool {
	xEnd := xStart + xLen
	yEnd := yStart + yLen
	return xStart <= yEnd && yStart <= xEnd
}

// merge combines x and y into the smallest ProtoSD covering both arms
// of each. Each side's new length is derived only from that side's own
// arm lengths.
func merge(x, y model.ProtoSD) model.ProtoSD {
	newLeft := min(x.Left, y.Left)
	lsize := max(x.Left+x.LeftLength, y.Left+y.LeftLength) - newLeft

	newRight := min(x.Right, y.Right)
	rsize := max(x.Right+x.RightLength, y.Right+y.RightLength) - newRight

	return model.ProtoSD{
		Left:         newLeft,
		Right:        newRight,
		LeftLength:   lsize,
		RightLength:  rsize,
		Reversed:     x.Reversed,
		Complemented: x.Complemented,
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
