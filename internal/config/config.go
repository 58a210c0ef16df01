// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads axesplot settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aclements/go-chartaxes/axes"
	"github.com/aclements/go-chartaxes/labels"
	"github.com/aclements/go-chartaxes/theme"
	"golang.org/x/text/language"
)

// Config is the contents of an axesplot configuration file. Unset
// fields keep their defaults.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Margin is the space around the plot area in pixels.
	Margin float64 `yaml:"margin"`

	Theme  theme.Palette `yaml:"theme"`
	Layout Layout        `yaml:"layout"`
	Labels Labels        `yaml:"labels"`
}

// Layout overrides axes.Options.
type Layout struct {
	YLabels      int     `yaml:"yLabels"`
	Pad          float64 `yaml:"pad"`
	MinTickGap   float64 `yaml:"minTickGap"`
	ReservedLeft float64 `yaml:"reservedLeft"`
	TargetTicks  int     `yaml:"targetTicks"`
	FontFamily   string  `yaml:"fontFamily"`
	ValueFont    float64 `yaml:"valueFontSize"`
	TimeFont     float64 `yaml:"timeFontSize"`
}

// Labels selects label formatting.
type Labels struct {
	Language   string `yaml:"language"`
	DateFormat string `yaml:"dateFormat"`
	TimeFormat string `yaml:"timeFormat"`
}

// Default returns the built-in configuration.
func Default() *Config {
	o := axes.DefaultOptions()
	return &Config{
		Width:  800,
		Height: 300,
		Margin: 10,
		Theme:  theme.Light,
		Layout: Layout{
			YLabels:      o.YLabels,
			Pad:          o.Pad,
			MinTickGap:   o.MinTickGap,
			ReservedLeft: o.ReservedLeft,
			TargetTicks:  o.TargetTicks,
			FontFamily:   o.ValueFont.Family,
			ValueFont:    o.ValueFont.Size,
			TimeFont:     o.TimeFont.Size,
		},
		Labels: Labels{
			Language:   "en",
			DateFormat: labels.MediumDate,
			TimeFormat: labels.ShortTime,
		},
	}
}

// Load reads the configuration file at path over the defaults. An
// empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that cfg describes a drawable chart.
func (cfg *Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.Margin < 0 || 2*cfg.Margin >= float64(cfg.Width) || 2*cfg.Margin >= float64(cfg.Height) {
		return fmt.Errorf("margin %v does not fit a %dx%d chart", cfg.Margin, cfg.Width, cfg.Height)
	}
	if cfg.Layout.YLabels < 2 {
		return fmt.Errorf("yLabels must be at least 2, got %d", cfg.Layout.YLabels)
	}
	if cfg.Layout.MinTickGap < 0 || cfg.Layout.ReservedLeft < 0 {
		return fmt.Errorf("tick gaps must not be negative")
	}
	if _, err := language.Parse(cfg.Labels.Language); err != nil {
		return fmt.Errorf("labels language: %w", err)
	}
	return cfg.Theme.Validate()
}

// Options returns the axes options described by cfg.
func (cfg *Config) Options() axes.Options {
	o := axes.DefaultOptions()
	l := cfg.Layout
	o.YLabels = l.YLabels
	o.Pad = l.Pad
	o.MinTickGap = l.MinTickGap
	o.ReservedLeft = l.ReservedLeft
	o.TargetTicks = l.TargetTicks
	o.ValueFont = axes.Font{Family: l.FontFamily, Size: l.ValueFont}
	o.TimeFont = axes.Font{Family: l.FontFamily, Size: l.TimeFont}

	tag, err := language.Parse(cfg.Labels.Language)
	if err != nil {
		tag = language.English
	}
	f := labels.New(tag)
	if cfg.Labels.DateFormat != "" {
		f.DateFormat = cfg.Labels.DateFormat
	}
	if cfg.Labels.TimeFormat != "" {
		f.TimeFormat = cfg.Labels.TimeFormat
	}
	o.FormatValue, o.FormatDate, o.FormatTime = f.Value, f.Date, f.Time
	return o
}
