// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// asgart finds segmental duplications within a genome: pairs of
// collinear subsequences sharing a high degree of identity, possibly
// reversed and/or complemented. It reads one or more FASTA files, runs
// the chunked search-and-extend pipeline, cleans up the raw hits, and
// writes the result as JSON or GFF3.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/asgart-go/asgart/internal/chunk"
	"github.com/asgart-go/asgart/internal/errs"
	"github.com/asgart-go/asgart/internal/export"
	"github.com/asgart-go/asgart/internal/logging"
	"github.com/asgart-go/asgart/internal/memcheck"
	"github.com/asgart-go/asgart/internal/model"
	"github.com/asgart-go/asgart/internal/postprocess"
	"github.com/asgart-go/asgart/internal/searcher"
	"github.com/asgart-go/asgart/internal/store"
	"github.com/asgart-go/asgart/internal/strand"
	"github.com/asgart-go/asgart/internal/sufarray"

	"modernc.org/kv"
)

// defaultProbeSize is the default k-mer length probed into the
// reference index at every automaton step; the probe size must be at
// least searcher.CacheLen.
const defaultProbeSize = 20

func main() {
	in := flag.String("in", "", "specify the FASTA file to search (required)")
	probeSize := flag.Int("probe-size", defaultProbeSize, "specify the k-mer length probed at each step")
	minLen := flag.Int("min-length", 1000, "specify the minimum duplication length to report")
	maxGap := flag.Uint("max-gap", 100, "specify the maximum gap tolerated while extending an arm, on top of probe-size")
	maxCard := flag.Int("max-cardinality", 500, "specify the maximum number of hits a probe may have before it is skipped")
	reverse := flag.Bool("reverse", false, "specify whether to search reverse duplications")
	complement := flag.Bool("complement", false, "specify whether to search complemented duplications")
	skipMasked := flag.Bool("skip-masked", false, "specify whether to turn soft-masked (lower-case) bases into N instead of folding them to upper case")
	computeScore := flag.Bool("identity", false, "specify whether to compute a Levenshtein-based identity score for every duplication (expensive)")
	emitSequences := flag.Bool("emit-sequences", false, "specify whether to include the nucleotide sequence of each arm in the output")
	format := flag.String("format", "json", "specify output format: json or gff3")
	out := flag.String("out", "", "specify output file (default stdout)")
	auditStore := flag.String("audit-store", "", "specify a path to persist every duplication to a queryable kv database")
	threads := flag.Int("threads", 0, "specify the maximum number of concurrent chunk scans (<=0 is use all cores)")
	verbose := flag.Bool("verbose", false, "specify verbose logging")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage of %[1]s:
  $ %[1]s -in <genome.fasta> [options] >out.json

Options:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		logging.Default.SetMinimum(logging.Debug)
	}

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *probeSize < searcher.CacheLen {
		logging.Errorf("probe size %d is smaller than the minimum %d", *probeSize, searcher.CacheLen)
		os.Exit(2)
	}

	settings := model.RunSettings{
		ProbeSize:            *probeSize,
		MaxGapSize:           uint32(*maxGap) + uint32(*probeSize),
		MinDuplicationLength: *minLen,
		MaxCardinality:       *maxCard,
		Reverse:              *reverse,
		Complement:           *complement,
		SkipMasked:           *skipMasked,
		ComputeScore:         *computeScore,
		Threads:              *threads,
		EmitSequences:        *emitSequences,
		AuditStore:           *auditStore,
	}
	if settings.Threads <= 0 {
		settings.Threads = runtime.NumCPU()
	}

	if err := run(*in, *format, *out, settings); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(inPath, format, outPath string, settings model.RunSettings) error {
	f, err := os.Open(inPath)
	if err != nil {
		return errs.New(errs.IoError, "run", err)
	}
	defer f.Close()

	logging.Infof("reading %s", inPath)
	st, err := strand.Build(f, settings.SkipMasked)
	if err != nil {
		return err
	}

	if err := memcheck.Check(len(st.Data)); err != nil {
		return err
	}

	logging.Infof("building suffix array over %d bases", len(st.Data))
	sa := sufarray.Build(st.Data)
	srch := searcher.New(st.Data, sa, 0)

	logging.Infof("scanning for duplications")
	families, err := chunk.Run(context.Background(), st.Data, st.Map, sa, srch, settings, logging.Default)
	if err != nil {
		return errs.New(errs.IoError, "run", err)
	}

	pipeline := postprocess.Default()
	if settings.ComputeScore {
		last := len(pipeline) - 1
		pipeline = append(pipeline[:last:last], postprocess.ComputeScore{}, pipeline[last])
	}
	families = pipeline.Run(families, st.Data)

	result := toRunResult(inPath, st, settings, families)

	if settings.EmitSequences {
		if err := export.AttachSequences(&result, f); err != nil {
			return errs.New(errs.IoError, "run", err)
		}
	}

	if settings.AuditStore != "" {
		if err := persist(settings.AuditStore, result); err != nil {
			return err
		}
	}

	w := os.Stdout
	if outPath != "" {
		of, err := os.Create(outPath)
		if err != nil {
			return errs.New(errs.IoError, "run", err)
		}
		defer of.Close()
		w = of
	}

	var exporter export.Exporter
	switch format {
	case "json":
		exporter = export.JSONExporter{}
	case "gff3":
		exporter = export.GFF3Exporter{}
	default:
		return errs.New(errs.ConfigurationError, "run", fmt.Errorf("unknown output format: %q", format))
	}
	return exporter.Export(w, result)
}

func toRunResult(inPath string, st *model.Strand, settings model.RunSettings, families []model.ProtoSDsFamily) model.RunResult {
	result := model.RunResult{
		StrandName: filepath.Base(inPath),
		StrandMap:  st.Map,
		Settings:   settings,
	}
	for _, family := range families {
		var resolved model.FragmentRecordsFamily
		for _, sd := range family {
			leftFrag, _ := st.FindFragment(sd.Left)
			rightFrag, _ := st.FindFragment(sd.Right)
			resolved = append(resolved, model.FragmentRecord{
				ChrLeft:             leftFrag.Name,
				ChrRight:            rightFrag.Name,
				GlobalLeftPosition:  sd.Left,
				GlobalRightPosition: sd.Right,
				ChrLeftPosition:     sd.Left - leftFrag.Position,
				ChrRightPosition:    sd.Right - rightFrag.Position,
				LeftLength:          sd.LeftLength,
				RightLength:         sd.RightLength,
				Identity:            sd.Identity,
				Reversed:            sd.Reversed,
				Complemented:        sd.Complemented,
			})
		}
		result.Families = append(result.Families, resolved)
	}
	return result
}

func persist(path string, result model.RunResult) error {
	opts := &kv.Options{Compare: store.ByFamilyThenLeft}
	db, err := kv.Create(path, opts)
	if err != nil {
		return errs.New(errs.IoError, "persist", err)
	}
	defer db.Close()

	if err := db.BeginTransaction(); err != nil {
		return errs.New(errs.IoError, "persist", err)
	}
	n := 0
	for _, family := range result.Families {
		for _, r := range family {
			if err := db.Set(store.MarshalSDKey(r), []byte{}); err != nil {
				db.Rollback()
				return errs.New(errs.IoError, "persist", err)
			}
			n++
		}
	}
	if err := db.Commit(); err != nil {
		return errs.New(errs.IoError, "persist", err)
	}
	logging.Infof("persisted %d duplication records to %s", n, path)
	return nil
}
