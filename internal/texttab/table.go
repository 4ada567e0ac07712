// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out text tables with aligned columns.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Row and Cell return the Table so callers can chain them to build up
// a row at once.
type Table struct {
	rows [][]textCell
	cols int
}

type textCell struct {
	value      string
	leftMargin string
	right      bool
}

// A CellOption modifies a single cell.
type CellOption func(c *textCell)

// LeftMargin sets the text printed before the cell. Margins are
// aligned per column, so the widest margin in a column wins.
func LeftMargin(x string) CellOption {
	return func(c *textCell) {
		c.leftMargin = x
	}
}

// Right aligns a cell to the right edge of its column.
var Right CellOption = func(c *textCell) { c.right = true }

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell at the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := textCell{value: value}
	if len(t.rows[len(t.rows)-1]) > 0 && value != "" {
		c.leftMargin = " "
	}
	for _, o := range opts {
		o(&c)
	}
	row := &t.rows[len(t.rows)-1]
	*row = append(*row, c)
	if len(*row) > t.cols {
		t.cols = len(*row)
	}
	return t
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	lmargin := make([]int, t.cols)
	ws := make([]int, t.cols)
	for _, row := range t.rows {
		for col, c := range row {
			lmargin[col] = max(lmargin[col], utf8.RuneCountInString(c.leftMargin))
			ws[col] = max(ws[col], utf8.RuneCountInString(c.value))
		}
	}

	var buf strings.Builder
	for _, row := range t.rows {
		buf.Reset()
		for col, c := range row {
			fmt.Fprintf(&buf, "%*s", lmargin[col], c.leftMargin)
			if c.right {
				fmt.Fprintf(&buf, "%*s", ws[col], c.value)
			} else {
				fmt.Fprintf(&buf, "%-*s", ws[col], c.value)
			}
		}
		// Left-aligned final cells would leave trailing spaces.
		line := strings.TrimRight(buf.String(), " ")
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
