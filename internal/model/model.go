// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model holds the data types shared across the duplication
// discovery pipeline: segments, proto-duplications, the strand they were
// found in, and the settings that shaped a run.
package model

// Segment is a half-open interval [Start, End) into the concatenated
// strand. It is used both for exact k-mer hits and for arm endpoints.
type Segment struct {
	Start, End int
}

// Len returns the length of the segment.
func (s Segment) Len() int { return s.End - s.Start }

// ProtoSD is an emitted duplication in strand-local coordinates, before
// fragment names are resolved into a FragmentRecord.
type ProtoSD struct {
	Left, Right             int
	LeftLength, RightLength int
	Identity                float32
	Reversed, Complemented  bool
}

// LeftPart returns the (start, length) pair for the left arm.
func (sd ProtoSD) LeftPart() (start, length int) { return sd.Left, sd.LeftLength }

// RightPart returns the (start, length) pair for the right arm.
func (sd ProtoSD) RightPart() (start, length int) { return sd.Right, sd.RightLength }

// ProtoSDsFamily is an ordered sequence of ProtoSDs sharing a family ID
// minted by a single automaton activation.
type ProtoSDsFamily []ProtoSD

// FragmentRange records where one input fragment (a FASTA record) lives
// within the concatenated strand.
type FragmentRange struct {
	Name     string
	Position int
	Length   int
}

// Strand is the concatenated, normalized, sentinel-terminated sequence
// that the whole run searches, plus the map back to its source fragments.
type Strand struct {
	Data []byte
	Map  []FragmentRange
}

// FindFragment returns the fragment containing the given absolute
// position, or false if pos falls outside every mapped fragment (which
// happens only for the trailing '$' sentinel).
func (s *Strand) FindFragment(pos int) (FragmentRange, bool) {
	for _, f := range s.Map {
		if pos >= f.Position && pos < f.Position+f.Length {
			return f, true
		}
	}
	return FragmentRange{}, false
}

// RunSettings collects every option recognized by the discovery engine.
type RunSettings struct {
	ProbeSize            int
	MaxGapSize           uint32
	MinDuplicationLength int
	MaxCardinality       int
	Reverse              bool
	Complement           bool
	SkipMasked           bool
	ComputeScore         bool
	Trim                 *Trim
	Threads              int
	EmitSequences        bool
	AuditStore           string
}

// Trim restricts suffix-array construction to strand[Start:End].
type Trim struct {
	Start, End int
}

// FragmentRecord is the per-SD, per-arm record the exporter writes: arm
// positions resolved to fragment-relative coordinates.
type FragmentRecord struct {
	ChrLeft, ChrRight                       string
	GlobalLeftPosition, GlobalRightPosition int
	ChrLeftPosition, ChrRightPosition       int
	LeftLength, RightLength                 int
	Identity                                float32
	Reversed, Complemented                  bool
	LeftSeq, RightSeq                       string
}

// FragmentRecordsFamily is a family of resolved records sharing a source
// activation of the automaton.
type FragmentRecordsFamily []FragmentRecord

// RunResult is the final, exportable output of a run.
type RunResult struct {
	StrandName string
	StrandMap  []FragmentRange
	Settings   RunSettings
	Families   []FragmentRecordsFamily
}
