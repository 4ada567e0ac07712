// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"

	"github.com/schedlab/timings/internal/diff"
)

func TestTable(t *testing.T) {
	var tab Table
	tab.Row().Cell("Count:", LeftMargin("  ")).Cell("12", Right)
	tab.Row().Cell("Average:", LeftMargin("  ")).Cell("1.500", Right).Cell("ms")
	tab.Row().Cell("µs:").Cell("0.25", Right).Cell("")

	var got strings.Builder
	if err := tab.Format(&got); err != nil {
		t.Fatal(err)
	}
	want := `  Count:      12
  Average: 1.500 ms
  µs:       0.25
`
	if d := diff.Diff(want, got.String()); d != "" {
		t.Errorf("table differs:\n%s", d)
	}
}

func TestEmpty(t *testing.T) {
	var tab Table
	var got strings.Builder
	if err := tab.Format(&got); err != nil {
		t.Fatal(err)
	}
	if got.Len() != 0 {
		t.Errorf("want no output, got %q", got.String())
	}
}
