// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timingstat groups timing measurements by label and computes
// descriptive statistics over each group.
package timingstat

import (
	"fmt"
	"io"
	"os"

	"github.com/schedlab/timings/timingfmt"
)

// Groups is an ordered collection of measurement groups keyed by
// label. Labels are kept in the order they were first added.
//
// The zero value is an empty collection ready to use.
type Groups struct {
	labels []string
	values map[string][]float64
}

// Add appends v to the group for label, creating the group if needed.
func (g *Groups) Add(label string, v float64) {
	if g.values == nil {
		g.values = make(map[string][]float64)
	}
	vs, ok := g.values[label]
	if !ok {
		g.labels = append(g.labels, label)
	}
	g.values[label] = append(vs, v)
}

// Labels returns the group labels in first-seen order.
// The caller must not modify the result.
func (g *Groups) Labels() []string {
	return g.labels
}

// Values returns the measurements for label in input order, or nil if
// there is no such group. The caller must not modify the result.
func (g *Groups) Values(label string) []float64 {
	return g.values[label]
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.labels)
}

// Summary returns statistics for the group with the given label.
// ok is false if the group is missing or empty.
func (g *Groups) Summary(label string) (s Summary, ok bool) {
	return Summarize(label, g.values[label])
}

// Summaries returns statistics for every non-empty group, in
// first-seen order.
func (g *Groups) Summaries() []Summary {
	out := make([]Summary, 0, len(g.labels))
	for _, label := range g.labels {
		if s, ok := g.Summary(label); ok {
			out = append(out, s)
		}
	}
	return out
}

// Aggregate reads all records from r and groups them by label.
// Malformed rows are skipped; only I/O errors are returned.
func Aggregate(r io.Reader, fileName string) (*Groups, error) {
	g := new(Groups)
	tr := timingfmt.NewReader(r, fileName)
	for tr.Scan() {
		rec := tr.Record()
		g.Add(rec.Label, rec.TimeMS)
	}
	if err := tr.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadFile reads and groups the timings CSV file at path.
// If the file does not exist, the returned error satisfies
// errors.Is(err, fs.ErrNotExist).
func ReadFile(path string) (*Groups, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading timings: %w", err)
	}
	defer f.Close()
	return Aggregate(f, path)
}
