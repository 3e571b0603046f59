// Copyright 2026 The sidediff Authors
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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// sidediff.Option.
package config

// Config collects all configurable parameters for alignment functions in this module.
type Config struct {
	// Threshold is the minimum similarity score for pairing a deleted line with an inserted
	// line into a single modified line.
	Threshold float64

	// If set, the quadratic-cost safeguards for very large inputs are disabled and alignment
	// quality is never traded for time.
	Precise bool
}

// Default is the default configuration.
var Default = Config{
	Threshold: 0.2,
	Precise:   false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// in a function that doesn't support them.
type Flag int

const (
	Threshold Flag = 1 << iota
	Precise
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Threshold:
		return "sidediff.Threshold"
	case Precise:
		return "sidediff.Precise"
	default:
		panic("never reached")
	}
}
