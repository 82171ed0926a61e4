// Package config loads optional YAML defaults for the collatz CLI.
// Flags given on the command line always override values from the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"collatz/internal/cli"
)

// File mirrors the subset of CLI options that may be set from YAML.
// Pointer fields distinguish "absent" from the zero value.
type File struct {
	Starts     []string `yaml:"starts"`      // start specs, appended to positionals
	StartFiles []string `yaml:"start_files"` // appended to --starts
	Width      *int     `yaml:"width"`
	MaxSteps   *uint64  `yaml:"max_steps"`
	Output     *string  `yaml:"output"`
	Steps      *bool    `yaml:"steps"`
	Peaks      *bool    `yaml:"peaks"`
	Sort       *bool    `yaml:"sort"`
	Header     *bool    `yaml:"header"`
	MetricsOut *string  `yaml:"metrics_out"`
}

// Load reads and decodes path. Unknown keys are rejected.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return Decode(bytes.NewReader(data), path)
}

// Decode parses YAML from r; name is used in error messages.
func Decode(r io.Reader, name string) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// Apply merges f into o. A field is taken from the file only when the
// matching flag was not given on the command line; list fields append.
func (f File) Apply(o *cli.Options) {
	o.Specs = append(o.Specs, f.Starts...)
	o.StartFiles = append(o.StartFiles, f.StartFiles...)
	if f.Width != nil && !o.Set["width"] {
		o.Width = *f.Width
	}
	if f.MaxSteps != nil && !o.Set["max-steps"] {
		o.MaxSteps = *f.MaxSteps
	}
	if f.Output != nil && !o.Set["output"] {
		o.Output = *f.Output
	}
	if f.Steps != nil && !o.Set["steps"] {
		o.Steps = *f.Steps
	}
	if f.Peaks != nil && !o.Set["peaks"] {
		o.Peaks = *f.Peaks
	}
	if f.Sort != nil && !o.Set["sort"] {
		o.Sort = *f.Sort
	}
	if f.Header != nil && !o.Set["no-header"] {
		o.Header = *f.Header
	}
	if f.MetricsOut != nil && !o.Set["metrics-out"] {
		o.MetricsOut = *f.MetricsOut
	}
}
