// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cullsd removes duplication arms that are completely contained
// within a higher-identity arm from a GFF3 file exported by asgart.
// Features without a score are not considered but retained.
//
// usage: cullsd < duplications.gff3 > culled.gff3
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/store/interval"
)

func main() {
	flag.Usage = func() {
		fmt.Println(`usage: cullsd < duplications.gff3 > culled.gff3`)
		os.Exit(0)
	}
	flag.Parse()

	r := gff.NewReader(os.Stdin)
	sc := featio.NewScanner(r)
	var feats []*gff.Feature
	for sc.Next() {
		feats = append(feats, sc.Feat().(*gff.Feature))
	}
	if err := sc.Error(); err != nil {
		log.Fatal(err)
	}

	w := gff.NewWriter(os.Stdout, 60, true)
	for _, f := range cullContained(feats) {
		if _, err := w.Write(f); err != nil {
			log.Fatal(err)
		}
	}
}

// cullContained returns feats with every arm completely contained
// within a higher-identity arm on the same sequence removed.
func cullContained(feats []*gff.Feature) []*gff.Feature {
	var tree interval.IntTree
	for i, f := range feats {
		if f.FeatScore == nil {
			continue
		}
		if err := tree.Insert(armInterval{uid: uintptr(i), Feature: f}, true); err != nil {
			log.Fatal(err)
		}
	}
	tree.AdjustRanges()

	var culled []*gff.Feature
outer:
	for _, f := range feats {
		if f.FeatScore != nil {
			for _, h := range tree.Get(armInterval{Feature: f}) {
				other := h.(armInterval)
				if other.SeqName != f.SeqName {
					continue
				}
				if *other.FeatScore > *f.FeatScore {
					continue outer
				}
			}
		}
		culled = append(culled, f)
	}
	return culled
}

type armInterval struct {
	uid uintptr
	*gff.Feature
}

// Overlap reports whether b completely contains i, matching this
// package's "discard the contained, lower-identity arm" semantics.
func (i armInterval) Overlap(b interval.IntRange) bool {
	return b.Start <= i.FeatStart && i.FeatEnd <= b.End
}

func (i armInterval) ID() uintptr { return i.uid }

func (i armInterval) Range() interval.IntRange {
	return interval.IntRange{Start: i.FeatStart, End: i.FeatEnd}
}
