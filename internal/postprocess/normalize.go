// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postprocess

import "github.com/asgart-go/asgart/internal/model"

// Normalize canonicalizes each ProtoSD so that Left <= Right (the
// automaton can emit either arm first depending on scan direction) and
// clips both arms so they never run past the end of the strand data,
// which can otherwise happen for an arm extended on its very last step
// before deactivating.
type Normalize struct{}

func (Normalize) Name() string { return "normalizing arm order" }

func (Normalize) Run(families []model.ProtoSDsFamily, strandData []byte) []model.ProtoSDsFamily {
	out := make([]model.ProtoSDsFamily, len(families))
	for i, family := range families {
		norm := make(model.ProtoSDsFamily, len(family))
		for j, sd := range family {
			if sd.Left > sd.Right {
				sd.Left, sd.Right = sd.Right, sd.Left
				sd.LeftLength, sd.RightLength = sd.RightLength, sd.LeftLength
			}
			sd.LeftLength = clipLength(sd.Left, sd.LeftLength, len(strandData))
			sd.RightLength = clipLength(sd.Right, sd.RightLength, len(strandData))
			norm[j] = sd
		}
		out[i] = norm
	}
	return out
}

func clipLength(start, length, strandLen int) int {
	if start+length > strandLen {
		return strandLen - start
	}
	return length
}
