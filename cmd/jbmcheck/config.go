// Copyright 2025 go-jbm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the jbmcheck configuration.
type Config struct {
	Workers int     `yaml:"workers"` // <= 0 uses GOMAXPROCS
	Checks  []Check `yaml:"checks"`
}

// Check compares one function at one precision against the float64
// reference over an evenly sampled interval.
type Check struct {
	Function  string  `yaml:"function"`
	Precision string  `yaml:"precision"` // float32 or float64
	Lo        float64 `yaml:"lo"`
	Hi        float64 `yaml:"hi"`
	Samples   int     `yaml:"samples"`
	Tolerance float64 `yaml:"tolerance"` // absolute below 1, relative above
}

// Load reads the embedded defaults and overlays the file at path, if any.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid check.
func (c *Config) Validate() error {
	if len(c.Checks) == 0 {
		return errors.New("config has no checks")
	}
	var errs []error
	for i, ch := range c.Checks {
		if err := ch.validate(); err != nil {
			errs = append(errs, fmt.Errorf("check %d (%s): %w", i, ch.Function, err))
		}
	}
	return errors.Join(errs...)
}

func (ch Check) validate() error {
	if _, ok := functions[ch.Function]; !ok {
		return fmt.Errorf("unknown function %q", ch.Function)
	}
	if ch.Precision != "float32" && ch.Precision != "float64" {
		return fmt.Errorf("precision must be float32 or float64, got %q", ch.Precision)
	}
	if !(ch.Lo < ch.Hi) {
		return fmt.Errorf("empty range [%v, %v]", ch.Lo, ch.Hi)
	}
	if ch.Samples < 1 {
		return fmt.Errorf("samples must be positive, got %d", ch.Samples)
	}
	if !(ch.Tolerance > 0) {
		return fmt.Errorf("tolerance must be positive, got %v", ch.Tolerance)
	}
	return nil
}
