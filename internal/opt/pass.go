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


package opt

import (
    `errors`
    `os`

    `github.com/cloudwego/tacopt/internal/bb`
    `github.com/cloudwego/tacopt/internal/opts`
)

type Pass interface {
    Apply(*bb.FuncBB) error
}

type PassDescriptor struct {
    Name string
    Desc string
    New  func(opts.Options) Pass
}

var Passes = [...]PassDescriptor {
    { Name: "constprop", Desc: "Constant Propagation", New: newConstProp },
}

func newConstProp(o opts.Options) Pass {
    if o.Debug {
        return ConstProp { Trace: os.Stderr, Strict: o.Strict }
    } else {
        return ConstProp { Strict: o.Strict }
    }
}

// Lookup finds a pass by name.
func Lookup(name string) (*PassDescriptor, error) {
    for i := range Passes {
        if Passes[i].Name == name {
            return &Passes[i], nil
        }
    }
    return nil, EPass(name, "", errors.New("no such pass"))
}

// Optimize runs the passes named in o on fn, in order. It stops at the first
// failing pass, and the function should be discarded when it does.
func Optimize(fn *bb.FuncBB, o opts.Options) error {
    for _, name := range o.Passes {
        if desc, err := Lookup(name); err != nil {
            return err
        } else if err = desc.New(o).Apply(fn); err != nil {
            return EPass(name, fn.Name, err)
        }
    }
    return nil
}
