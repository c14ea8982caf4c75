// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store encodes exported duplication records as keys for a
// modernc.org/kv database, ordered so a range scan yields them grouped
// by left-arm sequence and ordered by left-arm position, for
// cmd/auditsd to query without re-parsing GFF3.
package store

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/asgart-go/asgart/internal/model"
)

var order = binary.BigEndian

// SDKey is the decoded form of a stored record's key.
type SDKey struct {
	ChrLeft             string
	GlobalLeftPosition  int64
	GlobalRightPosition int64
	ChrRight            string
	Identity            float64
	Reversed            bool
	Complemented        bool
}

// MarshalInt returns a slice encoding n as a big-endian int64, for use
// as a plain counter key.
func MarshalInt(n int) []byte {
	var buf [8]byte
	order.PutUint64(buf[:], uint64(n))
	return buf[:]
}

// MarshalSDKey encodes r's identifying coordinates into a fixed-field,
// length-prefixed big-endian key suitable for ordered storage.
func MarshalSDKey(r model.FragmentRecord) []byte {
	var (
		buf bytes.Buffer
		b   [8]byte
	)
	writeString := func(s string) {
		order.PutUint64(b[:], uint64(len(s)))
		buf.Write(b[:])
		buf.WriteString(s)
	}
	writeInt := func(n int64) {
		order.PutUint64(b[:], uint64(n))
		buf.Write(b[:])
	}

	left := int64(r.GlobalLeftPosition)
	right := int64(r.GlobalRightPosition)

	writeString(r.ChrLeft)
	writeInt(left)
	writeInt(right)
	writeString(r.ChrRight)
	order.PutUint64(b[:], math.Float64bits(float64(r.Identity)))
	buf.Write(b[:])
	flags := byte(0)
	if r.Reversed {
		flags |= 1
	}
	if r.Complemented {
		flags |= 2
	}
	buf.WriteByte(flags)
	return buf.Bytes()
}

// UnmarshalSDKey decodes a key produced by MarshalSDKey.
func UnmarshalSDKey(data []byte) SDKey {
	var k SDKey
	const n64 = 8

	readString := func() string {
		n := order.Uint64(data[:n64])
		data = data[n64:]
		s := string(data[:n])
		data = data[n:]
		return s
	}
	readInt := func() int64 {
		v := int64(order.Uint64(data[:n64]))
		data = data[n64:]
		return v
	}

	k.ChrLeft = readString()
	k.GlobalLeftPosition = readInt()
	k.GlobalRightPosition = readInt()
	k.ChrRight = readString()
	k.Identity = math.Float64frombits(order.Uint64(data[:n64]))
	data = data[n64:]
	flags := data[0]
	k.Reversed = flags&1 != 0
	k.Complemented = flags&2 != 0
	return k
}

// ByFamilyThenLeft is a kv compare function ordering records by left
// chromosome, then global left position: a symmetric duplication
// record's analogue of ordering by subject position.
func ByFamilyThenLeft(x, y []byte) int {
	if bytes.Equal(x, y) {
		return 0
	}

	kx := UnmarshalSDKey(x)
	ky := UnmarshalSDKey(y)

	switch {
	case kx.ChrLeft < ky.ChrLeft:
		return -1
	case kx.ChrLeft > ky.ChrLeft:
		return 1
	}
	switch {
	case kx.GlobalLeftPosition < ky.GlobalLeftPosition:
		return -1
	case kx.GlobalLeftPosition > ky.GlobalLeftPosition:
		return 1
	}
	switch {
	case kx.ChrRight < ky.ChrRight:
		return -1
	case kx.ChrRight > ky.ChrRight:
		return 1
	}
	switch {
	case kx.GlobalRightPosition < ky.GlobalRightPosition:
		return -1
	case kx.GlobalRightPosition > ky.GlobalRightPosition:
		return 1
	}
	switch {
	case kx.Identity > ky.Identity:
		return -1
	case kx.Identity < ky.Identity:
		return 1
	}

	return 0
}
