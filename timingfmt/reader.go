// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timingfmt reads labeled timing measurements in CSV form.
//
// The format is a header row naming at least the columns "label" and
// "time_ms", followed by one row per measurement:
//
//	label,time_ms
//	direct processing,0.0123
//	end-to-end RPC,0.0871
//
// Column order does not matter and other columns are ignored. Files
// are usually produced by appending to a log, so the reader is
// deliberately lenient: rows that are short, fail to parse, or repeat
// the header are skipped without error.
package timingfmt

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// Column names recognized in the header row.
const (
	LabelColumn = "label"
	TimeColumn  = "time_ms"
)

// A Record is a single timing measurement.
type Record struct {
	Label  string
	TimeMS float64

	// Line is the line in the input where this record starts.
	// It is purely diagnostic.
	Line int
}

// A Reader reads timing records from CSV input.
//
// Its API is modeled on bufio.Scanner.
type Reader struct {
	c        *csv.Reader
	fileName string
	err      error

	// labelCol and timeCol are the field indexes of the recognized
	// columns, or -1 if the header did not name them.
	labelCol, timeCol int
	header            bool

	rec Record
}

// NewReader constructs a reader for CSV timing data from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	c := csv.NewReader(r)
	// Rows with the wrong number of fields are handled by parseRow.
	c.FieldsPerRecord = -1
	c.ReuseRecord = true
	return &Reader{c: c, fileName: fileName, labelCol: -1, timeCol: -1}
}

// Scan advances the reader to the next well-formed record and reports
// whether one was read. Malformed rows are skipped.
// If Scan reaches EOF or an I/O error occurs, it returns false,
// in which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	for r.err == nil {
		fields, err := r.c.Read()
		if err == io.EOF {
			return false
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				// A syntax error only spoils this row.
				continue
			}
			r.err = err
			return false
		}
		if !r.header {
			r.header = true
			r.readHeader(fields)
			continue
		}
		rec, ok := r.parseRow(fields)
		if !ok {
			continue
		}
		rec.Line, _ = r.c.FieldPos(0)
		r.rec = rec
		return true
	}
	return false
}

// Record returns the record read by the last successful call to Scan.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	if r.err == nil {
		return nil
	}
	return &ReadError{r.fileName, r.err}
}

// A ReadError reports an I/O failure while reading a timings file.
type ReadError struct {
	FileName string
	Err      error
}

func (e *ReadError) Error() string {
	return e.FileName + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (r *Reader) readHeader(fields []string) {
	for i, f := range fields {
		if i == 0 {
			f = strings.TrimPrefix(f, "\ufeff")
		}
		switch strings.TrimSpace(f) {
		case LabelColumn:
			if r.labelCol < 0 {
				r.labelCol = i
			}
		case TimeColumn:
			if r.timeCol < 0 {
				r.timeCol = i
			}
		}
	}
}

// parseRow converts a data row into a Record. It reports false if the
// row is missing either column, repeats the header, or has a time that
// is not a finite number.
func (r *Reader) parseRow(fields []string) (Record, bool) {
	if r.labelCol < 0 || r.timeCol < 0 {
		return Record{}, false
	}
	if r.labelCol >= len(fields) || r.timeCol >= len(fields) {
		return Record{}, false
	}
	label, timeStr := fields[r.labelCol], strings.TrimSpace(fields[r.timeCol])
	if label == LabelColumn || timeStr == TimeColumn {
		return Record{}, false
	}
	v, err := strconv.ParseFloat(timeStr, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Record{}, false
	}
	return Record{Label: label, TimeMS: v}, true
}
