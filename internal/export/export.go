// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes a finished RunResult out as either JSON or
// GFF3, optionally alongside the nucleotide sequence of each arm.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/hts/fai"

	"github.com/asgart-go/asgart/internal/model"
)

// Exporter writes a RunResult to w.
type Exporter interface {
	Export(w io.Writer, result model.RunResult) error
}

// JSONExporter writes the whole RunResult as a single indented JSON
// object.
type JSONExporter struct{}

func (JSONExporter) Export(w io.Writer, result model.RunResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// GFF3Exporter writes one gff.Feature per arm (two per duplication:
// "left" and "right"), linked by an ID/Parent pair so that a GFF3
// reader can reconstruct the duplication pairs.
type GFF3Exporter struct{}

func (GFF3Exporter) Export(w io.Writer, result model.RunResult) error {
	enc := gff.NewWriter(w, 60, true)
	for fi, family := range result.Families {
		for ri, r := range family {
			parentID := fmt.Sprintf("sd%d_%d", fi, ri)
			strand := seq.Plus
			if r.Reversed {
				strand = seq.Minus
			}
			score := float64(r.Identity)

			left := &gff.Feature{
				SeqName:    r.ChrLeft,
				Source:     "asgart",
				Feature:    "duplication_left_arm",
				FeatStart:  r.ChrLeftPosition,
				FeatEnd:    r.ChrLeftPosition + r.LeftLength,
				FeatScore:  &score,
				FeatStrand: seq.Plus,
				FeatFrame:  gff.NoFrame,
				FeatAttributes: gff.Attributes{
					{Tag: "ID", Value: parentID + "_L"},
					{Tag: "Parent", Value: parentID},
				},
			}
			if _, err := enc.Write(left); err != nil {
				return err
			}

			right := &gff.Feature{
				SeqName:    r.ChrRight,
				Source:     "asgart",
				Feature:    "duplication_right_arm",
				FeatStart:  r.ChrRightPosition,
				FeatEnd:    r.ChrRightPosition + r.RightLength,
				FeatScore:  &score,
				FeatStrand: strand,
				FeatFrame:  gff.NoFrame,
				FeatAttributes: gff.Attributes{
					{Tag: "ID", Value: parentID + "_R"},
					{Tag: "Parent", Value: parentID},
				},
			}
			if _, err := enc.Write(right); err != nil {
				return err
			}
		}
	}
	return nil
}

// AttachSequences fills LeftSeq/RightSeq on every record in result by
// looking each arm up in a FASTA index built over the original input
// file, for RunSettings.EmitSequences.
func AttachSequences(result *model.RunResult, src *os.File) error {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	idx, err := fai.NewIndex(src)
	if err != nil {
		return err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	file := fai.NewFile(src, idx)

	readRange := func(name string, start, length int) (string, error) {
		r, err := file.SeqRange(name, start, start+length)
		if err != nil {
			return "", err
		}
		b, err := io.ReadAll(r)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	for fi := range result.Families {
		for ri := range result.Families[fi] {
			r := &result.Families[fi][ri]
			left, err := readRange(r.ChrLeft, r.ChrLeftPosition, r.LeftLength)
			if err != nil {
				return err
			}
			r.LeftSeq = left
			right, err := readRange(r.ChrRight, r.ChrRightPosition, r.RightLength)
			if err != nil {
				return err
			}
			r.RightSeq = right
		}
	}
	return nil
}
