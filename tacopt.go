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
    `strings`

    `github.com/cloudwego/tacopt/internal/bb`
    `github.com/cloudwego/tacopt/internal/opt`
    `github.com/cloudwego/tacopt/internal/opts`
    `github.com/cloudwego/tacopt/internal/tac`
)

// Program is a list of optimized functions.
type Program struct {
    Funcs []*bb.FuncBB
}

func (self *Program) String() string {
    buf := make([]string, 0, len(self.Funcs))
    for _, fn := range self.Funcs {
        buf = append(buf, fn.String())
    }
    return strings.Join(buf, "\n\n")
}

// Dot renders every function in Graphviz DOT format.
func (self *Program) Dot() string {
    buf := make([]string, 0, len(self.Funcs))
    for _, fn := range self.Funcs {
        buf = append(buf, fn.Dot())
    }
    return strings.Join(buf, "\n\n")
}

func optionsOf(options []Option) opts.Options {
    ret := opts.GetDefaultOptions()
    for _, fn := range options {
        fn(&ret)
    }
    return ret
}

func compile(f *tac.Func, o opts.Options) (*bb.FuncBB, error) {
    fn, err := bb.Build(f)
    if err != nil {
        return nil, err
    }

    /* initial cleanup */
    if fn.Blocks, err = bb.Simplify(fn.Blocks, o.Strict); err != nil {
        return nil, err
    }

    /* run the passes */
    if err = opt.Optimize(fn, o); err != nil {
        return nil, err
    } else {
        return fn, nil
    }
}

// Compile parses TAC source, builds the CFG of every function and runs the
// configured optimization passes over it.
func Compile(src string, options ...Option) (*Program, error) {
    o := optionsOf(options)
    fns, err := tac.Parse(src)

    /* check for syntax errors */
    if err != nil {
        return nil, err
    }

    /* compile every function */
    ret := &Program { Funcs: make([]*bb.FuncBB, 0, len(fns)) }
    for _, f := range fns {
        if fn, err := compile(f, o); err != nil {
            return nil, err
        } else {
            ret.Funcs = append(ret.Funcs, fn)
        }
    }

    /* all done */
    return ret, nil
}

// Optimize is like Compile, but returns the printed program.
func Optimize(src string, options ...Option) (string, error) {
    if p, err := Compile(src, options...); err != nil {
        return "", err
    } else {
        return p.String(), nil
    }
}
