// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Timingreport summarizes scheduler benchmark timings.
//
// Usage:
//
//	timingreport [-format text|csv] [-title text] [timings.csv [timings.png]]
//
// The input is the CSV log written by the scheduler benchmark, with a
// header naming the columns "label" and "time_ms". Rows that do not
// parse are skipped, as are repeated header lines, so the log of
// several runs may simply be concatenated.
//
// For each label, timingreport prints the number of samples and their
// mean, minimum and maximum in milliseconds. It then draws a bar chart
// of the mean of each label to the output image (timings.png by
// default). When the log contains both the "direct processing" and
// "end-to-end RPC" labels, the chart carries a caption judging the
// overhead the scheduler adds, relative to the "worker task" time.
//
// The -format flag selects text (the default) or csv output for the
// statistics. The -title flag replaces the chart title.
//
// Building with the nochart tag leaves out chart support; the report is
// then printed without an image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/schedlab/timings/report"
	"github.com/schedlab/timings/timingstat"
)

const (
	defaultInput  = "timings.csv"
	defaultOutput = "timings.png"
)

var exit = os.Exit // replaced during testing

func main() {
	log.SetPrefix("timingreport: ")
	log.SetFlags(0)
	err := timingreport(os.Stdout, os.Stderr, os.Args[1:], chartRenderer())
	switch {
	case err == nil, err == flag.ErrHelp:
	case err == errUsage:
		exit(2)
	case errors.Is(err, fs.ErrNotExist):
		// Already explained to the user.
		exit(1)
	default:
		log.Print(err)
		exit(1)
	}
}

// errUsage is returned after the usage message has been printed.
var errUsage = errors.New("usage error")

func timingreport(w, wErr io.Writer, args []string, renderer report.Renderer) error {
	flags := flag.NewFlagSet("timingreport", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: timingreport [options] [timings.csv [timings.png]]\n")
		fmt.Fprintf(flags.Output(), "options:\n")
		flags.PrintDefaults()
	}
	flagFormat := flags.String("format", "text", "print statistics in `format`: text or csv")
	flagTitle := flags.String("title", report.DefaultTitle, "chart `title`")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return errUsage
	}

	// status receives progress messages. CSV output is for other
	// programs, so keep stdout pure CSV in that case.
	var format func(io.Writer, *timingstat.Groups) error
	status := w
	switch *flagFormat {
	case "text":
		format = report.FormatText
	case "csv":
		format = report.FormatCSV
		status = wErr
	default:
		fmt.Fprintf(wErr, "unknown format %q\n", *flagFormat)
		flags.Usage()
		return errUsage
	}

	input, output := defaultInput, defaultOutput
	switch flags.NArg() {
	case 2:
		output = flags.Arg(1)
		fallthrough
	case 1:
		input = flags.Arg(0)
	case 0:
	default:
		flags.Usage()
		return errUsage
	}

	groups, err := timingstat.ReadFile(input)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(wErr, "Error: %s not found!\n\n", input)
		fmt.Fprintf(wErr, "To generate timing data:\n")
		fmt.Fprintf(wErr, "  1. Start the server: ./server\n")
		fmt.Fprintf(wErr, "  2. Run benchmark: ./benchmark.sh\n")
		fmt.Fprintf(wErr, "  3. Then run this program again\n")
		return err
	} else if err != nil {
		return err
	}

	if err := format(w, groups); err != nil {
		return err
	}

	chart := report.NewChart(groups, *flagTitle)
	err = report.SaveChart(renderer, output, chart)
	if errors.Is(err, report.ErrChartingUnavailable) {
		fmt.Fprintf(status, "\nCharting is not available in this build.\n")
		fmt.Fprintf(status, "To generate a graph, rebuild without the nochart tag:\n")
		fmt.Fprintf(status, "  go build ./cmd/timingreport\n")
		return nil
	} else if err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	fmt.Fprintf(status, "Graph saved to %s\n", output)
	return nil
}
