// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingstat

import "github.com/aclements/go-moremath/stats"

// A Summary holds descriptive statistics for one group, in
// milliseconds.
type Summary struct {
	Label string
	Count int

	Mean, Min, Max float64
}

// Summarize computes statistics over values. It reports false if values
// is empty, since none of the statistics are defined.
func Summarize(label string, values []float64) (Summary, bool) {
	if len(values) == 0 {
		return Summary{Label: label}, false
	}
	s := stats.Sample{Xs: values}
	lo, hi := s.Bounds()
	return Summary{
		Label: label,
		Count: len(values),
		Mean:  s.Mean(),
		Min:   lo,
		Max:   hi,
	}, true
}

// Mean returns the mean of the group with the given label, or 0 if the
// group is missing or empty.
func (g *Groups) Mean(label string) float64 {
	s, _ := g.Summary(label)
	return s.Mean
}
