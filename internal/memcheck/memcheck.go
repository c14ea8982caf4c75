// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memcheck performs a preflight estimate of whether the host
// has enough free memory to build a suffix array and bucket cache over
// a strand of the given size, before committing to the (expensive and
// hard to abort cleanly) construction step.
package memcheck

import (
	"fmt"

	"github.com/pbnjay/memory"

	"github.com/asgart-go/asgart/internal/errs"
)

// perByteOverhead is the approximate multiple of strand size consumed
// by the strand buffer itself, the int32 suffix array (4 bytes per
// input byte) and the bucket cache, rounded up for working memory
// during the sort. Empirically suffix-array construction plus cache
// build needs on the order of 9x the raw input size.
const perByteOverhead = 9

// Check returns an error if building a suffix array over strandBytes
// bytes would likely exceed free system memory.
func Check(strandBytes int) error {
	free := memory.FreeMemory()
	need := uint64(strandBytes) * perByteOverhead
	if free != 0 && need > free {
		return errs.New(errs.ConfigurationError, "memcheck.Check",
			fmt.Errorf("estimated memory need %d bytes exceeds free memory %d bytes", need, free))
	}
	return nil
}
