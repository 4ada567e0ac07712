// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report formats grouped timing measurements as text, CSV, and
// bar charts comparing scheduler overhead.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/schedlab/timings/internal/texttab"
	"github.com/schedlab/timings/timingstat"
)

const bannerWidth = 60

// FormatText writes count, mean, min, and max for every non-empty group
// in g to w, in first-seen order.
func FormatText(w io.Writer, g *timingstat.Groups) error {
	banner := strings.Repeat("=", bannerWidth)
	if _, err := fmt.Fprintf(w, "\n%s\nPERFORMANCE STATISTICS\n%s\n", banner, banner); err != nil {
		return err
	}
	for _, s := range g.Summaries() {
		if _, err := fmt.Fprintf(w, "\n%s:\n", s.Label); err != nil {
			return err
		}
		var tab texttab.Table
		tab.Row().Cell("Count:", texttab.LeftMargin("  ")).Cell(strconv.Itoa(s.Count), texttab.Right)
		ms := func(name string, v float64) {
			tab.Row().Cell(name, texttab.LeftMargin("  ")).Cell(strconv.FormatFloat(v, 'f', 3, 64), texttab.Right).Cell("ms")
		}
		ms("Average:", s.Mean)
		ms("Min:", s.Min)
		ms("Max:", s.Max)
		if err := tab.Format(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n\n", banner)
	return err
}

// FormatCSV writes the same statistics as FormatText in CSV form, with
// values at full precision for consumption by other programs.
func FormatCSV(w io.Writer, g *timingstat.Groups) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"label", "count", "mean_ms", "min_ms", "max_ms"})
	for _, s := range g.Summaries() {
		cw.Write([]string{
			s.Label,
			strconv.Itoa(s.Count),
			strconv.FormatFloat(s.Mean, 'g', -1, 64),
			strconv.FormatFloat(s.Min, 'g', -1, 64),
			strconv.FormatFloat(s.Max, 'g', -1, 64),
		})
	}
	cw.Flush()
	return cw.Error()
}
