// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axesplot renders a time series as a line chart with value
// and time axes.
//
// The input is a CSV file of "timestamp,value" records. The chart is
// written as SVG, PNG, or a listing of the drawing operations that
// produced it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/aclements/go-chartaxes/canvas"
	"github.com/aclements/go-chartaxes/internal/config"
	"github.com/aclements/go-chartaxes/internal/series"
)

func main() {
	var (
		flagInput   = flag.String("i", "", "input CSV `file` of timestamp,value records")
		flagOutput  = flag.String("o", "", "output `file` (default stdout)")
		flagFormat  = flag.String("format", "", "output `format`: svg, png, or ops (default from -o, else svg)")
		flagConfig  = flag.String("config", "", "YAML configuration `file`")
		flagWidth   = flag.Int("w", 0, "chart width in pixels (overrides config)")
		flagHeight  = flag.Int("h", 0, "chart height in pixels (overrides config)")
		flagVerbose = flag.Bool("v", false, "log debugging output")
	)
	flag.Parse()
	if flag.NArg() > 0 || *flagInput == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "axesplot"})
	if *flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		logger.Fatal("loading configuration", "err", err)
	}
	if *flagWidth > 0 {
		cfg.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Height = *flagHeight
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("bad chart size", "err", err)
	}

	s, err := series.Open(*flagInput)
	if err != nil {
		logger.Fatal("reading series", "err", err)
	}
	start, end := s.Window()
	min, max := s.Range()
	logger.Debug("loaded series", "points", len(s), "start", start, "end", end, "min", min, "max", max)

	format := *flagFormat
	if format == "" {
		format = formatOf(*flagOutput)
	}

	if err := output(*flagOutput, format, cfg, s); err != nil {
		logger.Fatal("writing chart", "format", format, "err", err)
	}
	logger.Debug("wrote chart", "format", format, "width", cfg.Width, "height", cfg.Height)
}

// output renders s to the file at path, or to stdout if path is
// empty.
func output(path, format string, cfg *config.Config, s series.Series) error {
	if path == "" {
		bw := bufio.NewWriter(os.Stdout)
		if err := write(bw, format, cfg, s); err != nil {
			return err
		}
		return bw.Flush()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = write(bw, format, cfg, s)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", path, cerr)
	}
	return err
}

// formatOf guesses the output format from a file name.
func formatOf(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "png"
	case ".txt", ".ops":
		return "ops"
	}
	return "svg"
}

// write renders s to w in the named format.
func write(w io.Writer, format string, cfg *config.Config, s series.Series) error {
	c := newChart(cfg, s)
	switch format {
	case "svg":
		v := canvas.NewSVG(w, cfg.Width, cfg.Height)
		c.background(v)
		c.draw(v)
		return v.Done()

	case "png":
		r, err := canvas.NewRaster(cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		c.background(r)
		c.draw(r)
		if err := r.EncodePNG(w); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
		return nil

	case "ops":
		var rec canvas.Recorder
		c.draw(&rec)
		_, err := rec.WriteTo(w)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}
