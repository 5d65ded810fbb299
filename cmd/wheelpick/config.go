package main

import (
	"io"
	"os"
	"time"

	"github.com/cockroachdb/datetimepicker"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// pickerConfig is the YAML form of a datetimepicker.Config. Unset fields
// keep their defaults.
type pickerConfig struct {
	Type      string `yaml:"type"`
	MinDate   string `yaml:"min_date"`
	MaxDate   string `yaml:"max_date"`
	MinHour   *int   `yaml:"min_hour"`
	MaxHour   *int   `yaml:"max_hour"`
	MinMinute *int   `yaml:"min_minute"`
	MaxMinute *int   `yaml:"max_minute"`
	Location  string `yaml:"location"`
}

func readPickerConfig(r io.Reader) (pickerConfig, error) {
	var pc pickerConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pc); err != nil && !errors.Is(err, io.EOF) {
		return pickerConfig{}, errors.Wrap(err, "decoding picker config")
	}
	return pc, nil
}

func readPickerConfigFile(path string) (pickerConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return pickerConfig{}, errors.Wrapf(err, "opening picker config")
	}
	defer f.Close()
	return readPickerConfig(f)
}

// merge overlays the fields set in o onto pc.
func (pc pickerConfig) merge(o pickerConfig) pickerConfig {
	if o.Type != "" {
		pc.Type = o.Type
	}
	if o.MinDate != "" {
		pc.MinDate = o.MinDate
	}
	if o.MaxDate != "" {
		pc.MaxDate = o.MaxDate
	}
	if o.MinHour != nil {
		pc.MinHour = o.MinHour
	}
	if o.MaxHour != nil {
		pc.MaxHour = o.MaxHour
	}
	if o.MinMinute != nil {
		pc.MinMinute = o.MinMinute
	}
	if o.MaxMinute != nil {
		pc.MaxMinute = o.MaxMinute
	}
	if o.Location != "" {
		pc.Location = o.Location
	}
	return pc
}

// build returns the picker Config described by pc, starting from the
// defaults around now.
func (pc pickerConfig) build(now time.Time) (datetimepicker.Config, error) {
	if pc.Location != "" {
		loc, err := time.LoadLocation(pc.Location)
		if err != nil {
			return datetimepicker.Config{}, errors.Wrapf(err, "loading location")
		}
		now = now.In(loc)
	}
	typ := datetimepicker.TypeDateTime
	if pc.Type != "" {
		var err error
		if typ, err = datetimepicker.ParseType(pc.Type); err != nil {
			return datetimepicker.Config{}, err
		}
	}
	cfg := datetimepicker.DefaultConfig(typ, now)

	parseBound := func(s string, dest *time.Time) error {
		if s == "" {
			return nil
		}
		v, err := datetimepicker.ParseValue(datetimepicker.TypeDateTime, s)
		if err != nil {
			return errors.Wrapf(err, "parsing bound %q", s)
		}
		*dest = v.Time(cfg.Location)
		return nil
	}
	if err := parseBound(pc.MinDate, &cfg.MinDate); err != nil {
		return datetimepicker.Config{}, err
	}
	if err := parseBound(pc.MaxDate, &cfg.MaxDate); err != nil {
		return datetimepicker.Config{}, err
	}
	for _, b := range []struct {
		src  *int
		dest *int
	}{
		{pc.MinHour, &cfg.MinHour},
		{pc.MaxHour, &cfg.MaxHour},
		{pc.MinMinute, &cfg.MinMinute},
		{pc.MaxMinute, &cfg.MaxMinute},
	} {
		if b.src != nil {
			*b.dest = *b.src
		}
	}
	if err := cfg.Validate(); err != nil {
		return datetimepicker.Config{}, errors.Wrap(err, "invalid picker config")
	}
	return cfg, nil
}
