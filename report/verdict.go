// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"image/color"

	"github.com/schedlab/timings/timingstat"
)

// WorkTimeThreshold is the work time, in ms, above which scheduler
// overhead is considered acceptable.
const WorkTimeThreshold = 0.01

// A Verdict classifies the overhead the scheduler adds to a request.
type Verdict struct {
	// Overhead is mean(end-to-end) - mean(direct), in ms.
	Overhead float64

	// OverheadPct is Overhead as a percentage of the direct mean,
	// or 0 if the direct mean is 0.
	OverheadPct float64

	// WorkTime is the reference duration: the worker mean if it is
	// positive, otherwise the direct mean.
	WorkTime float64

	// Acceptable is set when WorkTime exceeds WorkTimeThreshold.
	Acceptable bool
}

// Compare computes the overhead verdict for g. It reports false if the
// direct or end-to-end group is missing or empty.
func Compare(g *timingstat.Groups) (Verdict, bool) {
	direct, ok1 := g.Summary(DirectLabel)
	e2e, ok2 := g.Summary(EndToEndLabel)
	if !ok1 || !ok2 {
		return Verdict{}, false
	}

	v := Verdict{Overhead: e2e.Mean - direct.Mean}
	if direct.Mean != 0 {
		v.OverheadPct = v.Overhead / direct.Mean * 100
	}
	v.WorkTime = direct.Mean
	if w, ok := g.Summary(WorkerLabel); ok && w.Mean > 0 {
		v.WorkTime = w.Mean
	}
	v.Acceptable = v.WorkTime > WorkTimeThreshold
	return v, true
}

// String returns the one-line annotation for the verdict.
func (v Verdict) String() string {
	if v.Acceptable {
		return fmt.Sprintf("✓ Scheduler overhead (%.4f ms) is %.1f%% of work time - acceptable for queuing/control benefits",
			v.Overhead, v.Overhead/v.WorkTime*100)
	}
	return fmt.Sprintf("⚠ Scheduler adds %.4f ms overhead (%.1f%% slower) - useful for complex tasks, queuing, and resource control",
		v.Overhead, v.OverheadPct)
}

// Background returns the caption background for the verdict: light
// green when acceptable, wheat otherwise, both at 30% opacity.
func (v Verdict) Background() color.Color {
	c := rgb(0xF5DEB3)
	if v.Acceptable {
		c = rgb(0x90EE90)
	}
	c.A = 0x4D
	return c
}
