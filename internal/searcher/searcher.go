// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package searcher wraps the suffix array with a precomputed bucket
// cache over every length-8 prefix of the DNA alphabet, so that looking
// up an arbitrary k-mer only needs to binary search within its cached
// bucket rather than the whole array.
package searcher

import (
	"fmt"

	"github.com/asgart-go/asgart/internal/model"
	"github.com/asgart-go/asgart/internal/sufarray"
)

// CacheLen is the length of the prefix the bucket cache is keyed on.
const CacheLen = 8

// Alphabet is the recognized DNA alphabet, including the N wildcard.
var Alphabet = [5]byte{'A', 'T', 'G', 'C', 'N'}

type bucket struct {
	first, count int
}

// Searcher resolves exact k-mer occurrences in a reference text via its
// suffix array, narrowed first through a bucket cache.
type Searcher struct {
	cache  map[uint64]bucket
	offset int
}

// New builds the bucket cache for text/sa. offset is added to every
// returned Segment, for the case where sa was built over a sub-range of
// a larger strand (see RunSettings.Trim).
func New(text []byte, sa sufarray.SA, offset int) *Searcher {
	s := &Searcher{cache: make(map[uint64]bucket, 390625), offset: offset}
	var p [CacheLen]byte
	var fill func(i int)
	fill = func(i int) {
		if i == CacheLen {
			first, count := sufarray.BucketSearch(text, p[:], sa)
			s.cache[fingerprint(p[:])] = bucket{first, count}
			return
		}
		for _, b := range Alphabet {
			p[i] = b
			fill(i + 1)
		}
	}
	fill(0)
	return s
}

// fingerprint packs the 8 alphabet bytes of p into a little-endian
// uint64. This is not a hash: the alphabet has 5 symbols so the packing
// is collision-free, it is just a convenient fixed-width key.
func fingerprint(p []byte) uint64 {
	var v uint64
	for i := 0; i < CacheLen; i++ {
		v |= uint64(p[i]) << (8 * uint(i))
	}
	return v
}

// Search returns every exact occurrence of pattern (len(pattern) >= 8) in
// text, as Segments in global coordinates (offset-shifted).
//
// Search panics with an InvalidAlphabet-shaped message if pattern's
// first 8 bytes contain a byte outside the recognized alphabet: that can
// only happen if the caller failed to normalize its input, which is a
// programmer error, not a runtime condition to recover from.
func (s *Searcher) Search(text []byte, sa sufarray.SA, pattern []byte) []model.Segment {
	if len(pattern) < CacheLen {
		panic(fmt.Sprintf("searcher: pattern shorter than cache prefix: %d", len(pattern)))
	}
	key := fingerprint(pattern[:CacheLen])
	b, ok := s.cache[key]
	if !ok {
		panic(fmt.Sprintf("searcher: invalid alphabet in pattern prefix %q", pattern[:CacheLen]))
	}
	if b.count == 0 {
		return nil
	}
	first, count := sufarray.BucketSearch(text, pattern, sa[b.first:b.first+b.count])
	out := make([]model.Segment, 0, count)
	for _, pos := range sa[b.first+first : b.first+first+count] {
		start := s.offset + int(pos)
		out = append(out, model.Segment{Start: start, End: start + len(pattern)})
	}
	return out
}
