// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// covsd reports per-base segmental-duplication coverage from a GFF3
// file exported by asgart: for each sequence, how many bases are
// covered by at least one duplication arm, and the deepest stack of
// overlapping arms seen anywhere on that sequence. The report is
// written to stdout as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/store/step"
)

func main() {
	in := flag.String("in", "", "specify the GFF3 file to scan (required; stdin if omitted)")
	flag.Parse()

	r := os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		r = f
	}

	vectors := make(map[string]*step.Vector)
	sc := featio.NewScanner(gff.NewReader(r))
	for sc.Next() {
		f := sc.Feat().(*gff.Feature)
		v, ok := vectors[f.SeqName]
		if !ok {
			var err error
			v, err = step.New(0, 1, depth(0))
			if err != nil {
				fatal(err)
			}
			v.Relaxed = true
			vectors[f.SeqName] = v
		}
		err := v.ApplyRange(f.FeatStart, f.FeatEnd, func(e step.Equaler) step.Equaler {
			return e.(depth) + 1
		})
		if err != nil {
			fatal(err)
		}
	}
	if err := sc.Error(); err != nil {
		fatal(err)
	}

	type record struct {
		CoveredBases int `json:"covered_bases"`
		MaxDepth     int `json:"max_depth"`
	}
	report := make(map[string]record)

	var names []string
	for name := range vectors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var covered, maxDepth int
		vectors[name].Do(func(start, end int, e step.Equaler) {
			d := int(e.(depth))
			if d == 0 {
				return
			}
			covered += end - start
			if d > maxDepth {
				maxDepth = d
			}
		})
		report[name] = record{CoveredBases: covered, MaxDepth: maxDepth}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fatal(err)
	}
}

// depth is a step.Vector element counting how many duplication arms
// cover a given base.
type depth int

func (d depth) Equal(e step.Equaler) bool { return d == e.(depth) }

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
