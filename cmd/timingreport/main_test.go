// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/schedlab/timings/internal/diff"
	"github.com/schedlab/timings/plotchart"
	"github.com/schedlab/timings/report"
)

func TestNoChart(t *testing.T) {
	golden(t, "nochart", report.NoRenderer{}, "timings.csv")
}

func TestCSV(t *testing.T) {
	golden(t, "csv", report.NoRenderer{}, "-format", "csv", "timings.csv")
}

func TestCSVWithChart(t *testing.T) {
	// Status messages must not mix with the CSV on stdout.
	out := filepath.Join(t.TempDir(), "timings.png")
	in := filepath.Join("testdata", "timings.csv")
	r := plotchart.Renderer{Width: 4 * vg.Inch, Height: 3 * vg.Inch, DPI: 50}

	var stdout, stderr bytes.Buffer
	if err := timingreport(&stdout, &stderr, []string{"-format", "csv", in, out}, r); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&stdout).ReadAll()
	if err != nil {
		t.Fatalf("stdout is not CSV: %v", err)
	}
	if len(rows) != 4 {
		t.Errorf("want header and 3 rows, got %q", rows)
	}
	if want := "Graph saved to " + out + "\n"; stderr.String() != want {
		t.Errorf("stderr: want %q, got %q", want, stderr.String())
	}
}

func TestExitCodes(t *testing.T) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer devNull.Close()

	oldArgs, oldExit, oldStdout, oldStderr := os.Args, exit, os.Stdout, os.Stderr
	defer func() {
		os.Args, exit, os.Stdout, os.Stderr = oldArgs, oldExit, oldStdout, oldStderr
	}()
	os.Stdout, os.Stderr = devNull, devNull

	dir := t.TempDir()
	in := filepath.Join("testdata", "timings.csv")
	// Opening a directory succeeds but reading it fails.
	unreadable := filepath.Join(dir, "unreadable")
	if err := os.Mkdir(unreadable, 0777); err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		args []string
		want int
	}{
		{[]string{"-format", "csv", in, filepath.Join(dir, "ok.png")}, 0},
		{[]string{filepath.Join(dir, "missing.csv"), filepath.Join(dir, "missing.png")}, 1},
		{[]string{unreadable, filepath.Join(dir, "unreadable.png")}, 1},
		{[]string{"-format", "html"}, 2},
		{[]string{"a.csv", "b.png", "c"}, 2},
	} {
		code := 0
		exit = func(c int) { code = c }
		os.Args = append([]string{"timingreport"}, test.args...)
		main()
		if code != test.want {
			t.Errorf("%q: want exit %d, got %d", test.args, test.want, code)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "missing.png")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("chart written for missing input: %v", err)
	}
}

func TestMissing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "timings.png")
	err := golden(t, "missing", plotchart.Renderer{}, "missing.csv", out)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("want fs.ErrNotExist, got %v", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("chart written for missing input: %v", err)
	}
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{
		{"-format", "html"},
		{"a.csv", "b.png", "c"},
		{"-bogus"},
	} {
		var out, outErr bytes.Buffer
		if err := timingreport(&out, &outErr, args, report.NoRenderer{}); err != errUsage {
			t.Errorf("%q: want usage error, got %v", args, err)
		}
		if !strings.Contains(outErr.String(), "usage: timingreport") {
			t.Errorf("%q: no usage message in %q", args, outErr.String())
		}
	}
}

func TestChart(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.png")
	in := filepath.Join("testdata", "timings.csv")
	r := plotchart.Renderer{Width: 7 * vg.Inch, Height: 4 * vg.Inch, DPI: 100}

	var stdout, stderr bytes.Buffer
	if err := timingreport(&stdout, &stderr, []string{"-title", "test", in, out}, r); err != nil {
		t.Fatal(err)
	}
	if want := "Graph saved to " + out + "\n"; !strings.HasSuffix(stdout.String(), want) {
		t.Errorf("stdout does not end with %q:\n%s", want, stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr: %s", stderr.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 700 || cfg.Height != 400 {
		t.Errorf("want 700x400 image, got %dx%d", cfg.Width, cfg.Height)
	}
}

func golden(t *testing.T, name string, r report.Renderer, args ...string) error {
	t.Helper()
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	var got, gotErr bytes.Buffer
	t.Logf("timingreport %s", strings.Join(args, " "))
	err := timingreport(&got, &gotErr, args, r)

	compare(t, name, "stdout", got.Bytes())
	compare(t, name, "stderr", gotErr.Bytes())
	return err
}

func compare(t *testing.T, name, sub string, got []byte) {
	t.Helper()

	wantPath := name + "." + sub
	want, err := os.ReadFile(wantPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Treat a missing file as empty.
			want = nil
		} else {
			t.Fatal(err)
		}
	}

	if d := diff.Diff(string(want), string(got)); d != "" {
		t.Errorf("%s differs:\n%s", wantPath, d)
		gotPath := name + ".got-" + sub
		if err := os.WriteFile(gotPath, got, 0666); err != nil {
			t.Fatalf("error writing %s: %s", gotPath, err)
		}
	}
}
