// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// ErrChartingUnavailable is returned by a Renderer that cannot draw
// charts in this build.
var ErrChartingUnavailable = errors.New("charting support not available")

// A Renderer draws a Chart as a raster image.
type Renderer interface {
	Render(w io.Writer, c *Chart) error
}

// NoRenderer is the Renderer for builds without charting support.
// Render always fails with ErrChartingUnavailable.
type NoRenderer struct{}

func (NoRenderer) Render(io.Writer, *Chart) error {
	return ErrChartingUnavailable
}

// SaveChart renders c with r and writes the image to path. Nothing is
// written if rendering fails.
func SaveChart(r Renderer, path string, c *Chart) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, c); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0666)
}
