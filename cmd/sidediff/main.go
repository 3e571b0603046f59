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

// sidediff compares two files and prints a side-by-side view of the differences.
//
// The engine output maps directly onto the two panes: Equal, Delete, and Modify records
// fill the left pane and Equal, Insert, and Modify records the right one. Modified rows are
// refined with character-level spans and the changed parts are highlighted when color is
// enabled.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"github.com/twopane/sidediff"
)

type options struct {
	Threshold float64 `long:"threshold" default:"0.2" description:"Minimum similarity for pairing changed lines"`
	Width     int     `short:"w" long:"width" default:"160" description:"Total output width in columns"`
	Color     string  `long:"color" choice:"auto" choice:"always" choice:"never" default:"auto" description:"When to use colors"`
	Summary   bool    `short:"s" long:"summary" description:"Print a change summary after the diff"`
	Args      struct {
		Left  string `positional-arg-name:"left"`
		Right string `positional-arg-name:"right"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	err := run(os.Args[1:])
	if err == nil {
		return
	}
	if flags.WroteHelp(err) {
		return
	}
	// Parse errors have already been reported by the flags package.
	var ferr *flags.Error
	if !errors.As(err, &ferr) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(1)
}

func run(args []string) error {
	var opts options
	if _, err := flags.NewParser(&opts, flags.Default).ParseArgs(args); err != nil {
		return err
	}

	left, err := os.ReadFile(opts.Args.Left)
	if err != nil {
		return fmt.Errorf("reading left file: %v", err)
	}
	right, err := os.ReadFile(opts.Args.Right)
	if err != nil {
		return fmt.Errorf("reading right file: %v", err)
	}

	lines := sidediff.Lines(string(left), string(right), sidediff.Threshold(opts.Threshold))
	lines = sidediff.WithSpans(lines)

	color := opts.Color == "always"
	if opts.Color == "auto" {
		color = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	r := newRenderer(os.Stdout, opts.Width, color)
	if err := r.render(lines); err != nil {
		return fmt.Errorf("writing diff: %v", err)
	}
	if opts.Summary {
		equal, modified, deleted, inserted := sidediff.Stats(lines)
		fmt.Printf("%d equal, %d modified, %d deleted, %d inserted\n", equal, modified, deleted, inserted)
	}
	return nil
}
