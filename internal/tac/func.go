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


package tac

import (
    `strings`
)

// Func is a linear function body. Registers are numbered densely from zero
// and every register index is below MaxReg.
type Func struct {
    Name   string
    MaxReg int
    Ins    []Tac
}

func (self *Func) String() string {
    buf := make([]string, 0, len(self.Ins) + 1)
    buf = append(buf, "func " + self.Name)

    /* labels are not indented */
    for _, v := range self.Ins {
        if _, ok := v.(*Label); ok {
            buf = append(buf, v.String())
        } else {
            buf = append(buf, "    " + v.String())
        }
    }

    /* join them together */
    return strings.Join(buf, "\n")
}

// ForEachReg calls fn for every register the instruction reads or writes.
func ForEachReg(p Tac, fn func(r Reg)) {
    if use, ok := p.(TacUsages); ok {
        for _, v := range use.Usages() {
            if r, ok := v.Reg(); ok {
                fn(r)
            }
        }
    }
    if def, ok := p.(TacDefinitions); ok {
        for _, r := range def.Definitions() {
            fn(*r)
        }
    }
}
