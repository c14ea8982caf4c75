// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package searcher

import (
	"testing"

	"github.com/asgart-go/asgart/internal/sufarray"
)

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func TestSearchFindsAllOccurrences(t *testing.T) {
	text := []byte(repeat("ATGCATGC", 4) + "$")
	sa := sufarray.Build(text)
	s := New(text, sa, 0)

	matches := s.Search(text, sa, []byte("ATGCATGC"))
	if len(matches) != 7 {
		t.Fatalf("len(matches) = %d, want 7", len(matches))
	}
	for _, m := range matches {
		if string(text[m.Start:m.End]) != "ATGCATGC" {
			t.Fatalf("match %+v does not cover ATGCATGC", m)
		}
	}
}

func TestSearchAppliesOffset(t *testing.T) {
	text := []byte("ATGCATGC$")
	sa := sufarray.Build(text)
	s := New(text, sa, 1000)

	matches := s.Search(text, sa, []byte("ATGCATGC"))
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Start != 1000 {
		t.Fatalf("Start = %d, want 1000", matches[0].Start)
	}
}

func TestSearchNoMatch(t *testing.T) {
	text := []byte("ATGCATGC$")
	sa := sufarray.Build(text)
	s := New(text, sa, 0)

	matches := s.Search(text, sa, []byte("TTTTTTTT"))
	if matches != nil {
		t.Fatalf("matches = %v, want nil", matches)
	}
}

func TestSearchPanicsOnShortPattern(t *testing.T) {
	text := []byte("ATGCATGC$")
	sa := sufarray.Build(text)
	s := New(text, sa, 0)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for pattern shorter than CacheLen")
		}
	}()
	s.Search(text, sa, []byte("ATG"))
}

func TestSearchPanicsOnInvalidAlphabet(t *testing.T) {
	text := []byte("ATGCATGC$")
	sa := sufarray.Build(text)
	s := New(text, sa, 0)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-alphabet byte")
		}
	}()
	s.Search(text, sa, []byte("XXXXXXXX"))
}
