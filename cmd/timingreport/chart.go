// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nochart

package main

import (
	"github.com/schedlab/timings/plotchart"
	"github.com/schedlab/timings/report"
)

func chartRenderer() report.Renderer {
	return plotchart.Renderer{}
}
