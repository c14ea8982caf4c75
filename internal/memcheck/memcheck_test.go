// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memcheck

import "testing"

func TestCheckAllowsSmallStrand(t *testing.T) {
	if err := Check(1024); err != nil {
		t.Fatalf("Check(1024) = %v, want nil", err)
	}
}

func TestCheckRejectsImpossiblyLargeStrand(t *testing.T) {
	err := Check(1 << 62)
	if err == nil {
		t.Skip("free memory unavailable on this host, Check cannot fail")
	}
}
