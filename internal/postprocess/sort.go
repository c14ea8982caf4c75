// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postprocess

import (
	"sort"

	"github.com/asgart-go/asgart/internal/model"
)

// Sort orders duplications within each family by left arm position,
// and orders the families themselves by their first member's left arm
// position, so output is reproducible regardless of chunk scheduling.
type Sort struct{}

func (Sort) Name() string { return "sorting" }

func (Sort) Run(families []model.ProtoSDsFamily, strandData []byte) []model.ProtoSDsFamily {
	out := make([]model.ProtoSDsFamily, len(families))
	for i, family := range families {
		sorted := make(model.ProtoSDsFamily, len(family))
		copy(sorted, family)
		sort.Slice(sorted, func(a, b int) bool { return sorted[a].Left < sorted[b].Left })
		out[i] = sorted
	}
	sort.Slice(out, func(a, b int) bool {
		if len(out[a]) == 0 {
			return false
		}
		if len(out[b]) == 0 {
			return true
		}
		return out[a][0].Left < out[b][0].Left
	})
	return out
}
