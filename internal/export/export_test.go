// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/asgart-go/asgart/internal/model"
)

func TestJSONExporterRoundTrips(t *testing.T) {
	result := model.RunResult{
		StrandName: "test",
		Families: []model.FragmentRecordsFamily{
			{{ChrLeft: "chr1", ChrRight: "chr1", LeftLength: 10, RightLength: 10, Identity: 95.5}},
		},
	}

	var buf bytes.Buffer
	if err := (JSONExporter{}).Export(&buf, result); err != nil {
		t.Fatalf("Export: %v", err)
	}

	var got model.RunResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decoding exported JSON: %v", err)
	}
	if got.StrandName != "test" || len(got.Families) != 1 || got.Families[0][0].Identity != 95.5 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
