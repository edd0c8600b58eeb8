/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package tacopt

import (
	"fmt"

	"github.com/cloudwego/tacopt/internal/opt"
	"github.com/cloudwego/tacopt/internal/opts"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithPasses sets the optimization passes to run on every function, in
// order. Currently the only pass is "constprop".
//
// Passing no names disables optimization, leaving only the initial CFG
// simplification.
//
// The default value of this option is "constprop", or the comma-separated
// list in the TACOPT_PASSES environment variable.
func WithPasses(names ...string) Option {
	for _, name := range names {
		if _, err := opt.Lookup(name); err != nil {
			panic(fmt.Sprintf("tacopt: invalid pass: %q", name))
		}
	}
	return func(o *opts.Options) { o.Passes = append([]string(nil), names...) }
}

// WithStrictReturn makes functions that may fall off the end while
// returning a value elsewhere an error.
//
// The default value of this option is "false", or the TACOPT_STRICT
// environment variable.
func WithStrictReturn(v bool) Option {
	return func(o *opts.Options) { o.Strict = v }
}

// WithDebug dumps the dataflow facts of every function to stderr.
//
// The default value of this option is "false", or the TACOPT_DEBUG
// environment variable.
func WithDebug(v bool) Option {
	return func(o *opts.Options) { o.Debug = v }
}

// WithOptions replaces all the options, usually with ones loaded from a file.
func WithOptions(v opts.Options) Option {
	return func(o *opts.Options) { *o = v }
}
