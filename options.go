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

package sidediff

import "github.com/twopane/sidediff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Threshold sets the minimum similarity score in [0, 1] above which a deleted line and an
// inserted line are paired into a single Modify record. The default is 0.2, low enough that
// a single-character edit on a short identifier still pairs as a modification.
func Threshold(v float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Threshold = min(1, max(0, v))
		return config.Threshold
	}
}

// Precise disables the safeguards that cap the quadratic matching and pairing passes for
// very large inputs. By default, regions too large for those passes degrade to plain
// deletions and insertions; with this option the full alignment is always computed,
// whatever the cost.
func Precise() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Precise = true
		return config.Precise
	}
}
