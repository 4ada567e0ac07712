// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"image/color"

	"github.com/schedlab/timings/timingstat"
)

// Labels written by the scheduler benchmark.
const (
	DirectLabel   = "direct processing"
	WorkerLabel   = "worker task"
	EndToEndLabel = "end-to-end RPC"
)

// DefaultTitle is the chart title used when none is given.
const DefaultTitle = "Scheduler Performance: Direct vs Scheduler Comparison"

// Legend explains the canonical bars. It is printed under the verdict.
const Legend = "Direct = no scheduler, Worker = actual work, End-to-End = total with scheduler"

type known struct {
	label, name string
	color       color.Color
}

// canonical lists the known labels in display order.
var canonical = []known{
	{DirectLabel, "Direct Processing\n(no scheduler)", rgb(0x4CAF50)},
	{WorkerLabel, "Worker Processing\n(with scheduler)", rgb(0x2196F3)},
	{EndToEndLabel, "End-to-End RPC\n(with scheduler)", rgb(0xFF9800)},
}

// OtherColor is used for bars with labels the benchmark does not write.
var OtherColor color.Color = rgb(0x9E9E9E)

func rgb(x uint32) color.NRGBA {
	return color.NRGBA{uint8(x >> 16), uint8(x >> 8), uint8(x), 0xFF}
}

// A Bar is one bar of a Chart.
type Bar struct {
	Label string // group label from the input
	Name  string // display name, possibly multi-line
	Color color.Color
	Mean  float64 // bar height, in ms
}

// ValueLabel returns the annotation printed above the bar.
func (b Bar) ValueLabel() string {
	return fmt.Sprintf("%.4f ms", b.Mean)
}

// A Chart describes a bar chart of mean latency per group.
type Chart struct {
	Title  string
	YLabel string
	Bars   []Bar

	// Verdict is the overhead classification, or nil if the input
	// lacks the direct or end-to-end groups.
	Verdict *Verdict
}

// NewChart builds the chart for g. Known labels come first in
// canonical order, followed by any others in first-seen order. Empty
// groups get no bar. If title is empty, DefaultTitle is used.
func NewChart(g *timingstat.Groups, title string) *Chart {
	if title == "" {
		title = DefaultTitle
	}
	c := &Chart{Title: title, YLabel: "Time (ms)"}

	isKnown := make(map[string]bool)
	for _, k := range canonical {
		isKnown[k.label] = true
		if s, ok := g.Summary(k.label); ok {
			c.Bars = append(c.Bars, Bar{k.label, k.name, k.color, s.Mean})
		}
	}
	for _, s := range g.Summaries() {
		if !isKnown[s.Label] {
			c.Bars = append(c.Bars, Bar{s.Label, s.Label, OtherColor, s.Mean})
		}
	}

	if v, ok := Compare(g); ok {
		c.Verdict = &v
	}
	return c
}

// Caption returns the text printed beneath the chart, or "" if there
// is no verdict.
func (c *Chart) Caption() string {
	if c.Verdict == nil {
		return ""
	}
	return c.Verdict.String() + "\n" + Legend
}
