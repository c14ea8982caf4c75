// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strand reads one or more FASTA files into a single
// concatenated, normalized, sentinel-terminated sequence, tracking the
// fragment boundaries needed to map a global position back to its
// source record. Build returns a strand held in the Go heap; MappedFile
// can copy strand data into an mmap'd scratch file, but Build does not
// use it.
package strand

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	mmap "github.com/edsrzf/mmap-go"

	"github.com/asgart-go/asgart/internal/errs"
	"github.com/asgart-go/asgart/internal/model"
)

// Sentinel terminates the concatenated strand so that no suffix runs
// off the end of the text during suffix-array construction.
const Sentinel = '$'

// Build reads every FASTA record from src, uppercasing and collapsing
// any non-ACGT symbol to N (if skipMasked is set, lower-case bases
// become N instead of being uppercased), and concatenates them into a
// single sentinel-terminated model.Strand.
func Build(src io.Reader, skipMasked bool) (*model.Strand, error) {
	sc := seqio.NewScanner(fasta.NewReader(src, linear.NewSeq("", nil, alphabet.DNA)))

	var buf bytes.Buffer
	var frags []model.FragmentRange
	pos := 0
	for sc.Next() {
		seq := sc.Seq().(*linear.Seq)
		start := pos
		for _, b := range seq.Seq {
			c := byte(b)
			if c >= 'a' && c <= 'z' {
				if skipMasked {
					c = 'N'
				} else {
					c -= 'a' - 'A'
				}
			}
			switch c {
			case 'A', 'T', 'G', 'C', 'N':
			default:
				c = 'N'
			}
			buf.WriteByte(c)
			pos++
		}
		frags = append(frags, model.FragmentRange{
			Name:     seq.ID,
			Position: start,
			Length:   pos - start,
		})
	}
	if err := sc.Error(); err != nil {
		return nil, errs.New(errs.IoError, "strand.Build", err)
	}
	if buf.Len() == 0 {
		return nil, errs.New(errs.InvalidInput, "strand.Build", fmt.Errorf("no sequence records found"))
	}
	buf.WriteByte(Sentinel)

	return &model.Strand{Data: buf.Bytes(), Map: frags}, nil
}

// Subrange returns the strand data restricted to [t.Start, t.End),
// re-terminated with the sentinel. Used for RunSettings.Trim.
func Subrange(data []byte, t model.Trim) ([]byte, error) {
	if t.Start < 0 || t.End > len(data) || t.Start >= t.End {
		return nil, errs.New(errs.InvalidInput, "strand.Subrange", fmt.Errorf("trim range [%d,%d) out of bounds for length %d", t.Start, t.End, len(data)))
	}
	out := make([]byte, 0, t.End-t.Start+1)
	out = append(out, data[t.Start:t.End]...)
	out = append(out, Sentinel)
	return out, nil
}

// MappedFile is a strand backed by an mmap'd scratch file rather than
// process heap memory, for strands too large to comfortably double-buffer
// during suffix-array construction.
type MappedFile struct {
	f    *os.File
	data mmap.MMap
}

// NewMappedFile writes data to a new scratch file at path and maps it
// read-write, returning the mapped bytes through m.Bytes().
func NewMappedFile(path string, data []byte) (*MappedFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, errs.New(errs.IoError, "strand.NewMappedFile", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return nil, errs.New(errs.IoError, "strand.NewMappedFile", err)
	}
	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, errs.New(errs.IoError, "strand.NewMappedFile", err)
	}
	return &MappedFile{f: f, data: m}, nil
}

// Bytes returns the mapped region.
func (m *MappedFile) Bytes() []byte { return m.data }

// Close unmaps and closes the backing file. It does not remove it.
func (m *MappedFile) Close() error {
	if err := m.data.Unmap(); err != nil {
		return errs.New(errs.IoError, "strand.Close", err)
	}
	return m.f.Close()
}

// NRuns returns the [start, end) ranges of runs of at least threshold
// consecutive N bytes in data. The chunk driver splits on these runs so
// that no chunk boundary falls inside a block of unresolved bases.
func NRuns(data []byte, threshold int) []model.Segment {
	var runs []model.Segment
	start := -1
	for i, b := range data {
		if b == 'N' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if i-start >= threshold {
				runs = append(runs, model.Segment{Start: start, End: i})
			}
			start = -1
		}
	}
	if start >= 0 && len(data)-start >= threshold {
		runs = append(runs, model.Segment{Start: start, End: len(data)})
	}
	return runs
}

// Reverse returns the reverse of data (not complemented).
func Reverse(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[len(data)-1-i] = b
	}
	return out
}

// complementTable maps each recognized base to its Watson-Crick
// complement; N maps to itself.
var complementTable = map[byte]byte{'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G', 'N': 'N', Sentinel: Sentinel}

// Complement returns the base-wise complement of data, preserving order.
func Complement(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = complementTable[b]
	}
	return out
}

// ReverseComplement returns the reverse complement of data.
func ReverseComplement(data []byte) []byte {
	return Reverse(Complement(data))
}
