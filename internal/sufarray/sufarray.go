// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sufarray is the opaque suffix-array provider the rest of the
// pipeline treats as an external collaborator: Build constructs the
// array, BucketSearch narrows it to the range of suffixes sharing a
// given prefix. No fetchable Go library exposes the raw sorted suffix
// index the Searcher's bucket cache needs (stdlib index/suffixarray
// hides it behind Lookup), so this is implemented directly with a
// comparison sort over suffix start indices.
package sufarray

import (
	"bytes"
	"sort"
)

// SA is a permutation of positions into the text such that the suffix
// starting at each position is in lexicographic order.
type SA []int32

// Build constructs the suffix array of text. text should already carry
// its terminating sentinel.
func Build(text []byte) SA {
	sa := make(SA, len(text))
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

// BucketSearch returns the SA index range [first, first+count) of
// suffixes of text, as ordered by sa, that begin with pattern. A suffix
// shorter than pattern is compared on its remaining bytes: if it is a
// prefix of pattern it compares as less than any full-length match, so
// it is excluded from the returned range.
func BucketSearch(text, pattern []byte, sa SA) (first, count int) {
	cmp := func(pos int32) int {
		end := int(pos) + len(pattern)
		if end > len(text) {
			// Too short to match: compare what is left, keeping the
			// order sa was sorted in.
			end = len(text)
		}
		return bytes.Compare(text[pos:end], pattern)
	}
	lo := sort.Search(len(sa), func(i int) bool { return cmp(sa[i]) >= 0 })
	hi := sort.Search(len(sa), func(i int) bool { return cmp(sa[i]) > 0 })
	return lo, hi - lo
}
