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
    `sort`
)

// Builder assembles a Func instruction by instruction, resolving symbolic
// labels into label IDs. Jumps may refer to labels defined later.
type Builder struct {
    name  string
    ins   []Tac
    err   error
    ids   map[string]int
    refs  map[string]bool
    pends map[string]bool
}

func CreateBuilder(name string) *Builder {
    return &Builder {
        name  : name,
        ids   : make(map[string]int),
        refs  : make(map[string]bool),
        pends : make(map[string]bool),
    }
}

func (self *Builder) add(p Tac) {
    self.ins = append(self.ins, p)
}

func (self *Builder) label(to string) int {
    var ok bool
    var id int

    /* allocate a new ID for unseen labels */
    if id, ok = self.ids[to]; !ok {
        id = len(self.ids)
        self.ids[to] = id
    }

    /* all done */
    return id
}

func (self *Builder) jmp(to string) int {
    if !self.refs[to] {
        self.pends[to] = true
    }
    return self.label(to)
}

func (self *Builder) Label(to string) {
    if self.refs[to] {
        if self.err == nil {
            self.err = ELabel(self.name, to, "label has already been defined")
        }
        return
    }

    /* mark the label as resolved */
    self.refs[to] = true
    delete(self.pends, to)
    self.add(&Label { Id: self.label(to) })
}

func (self *Builder) Build() (*Func, error) {
    var nb int
    var key []string

    /* check for previous errors */
    if self.err != nil {
        return nil, self.err
    }

    /* check for unresolved labels */
    for v := range self.pends {
        key = append(key, v)
    }

    /* report the first one in lexical order */
    if len(key) != 0 {
        sort.Strings(key)
        return nil, ELabel(self.name, key[0], "label is never defined")
    }

    /* find out the register count */
    for _, p := range self.ins {
        ForEachReg(p, func(r Reg) {
            if int(r) >= nb {
                nb = int(r) + 1
            }
        })
    }

    /* construct the function */
    return &Func {
        Name   : self.name,
        MaxReg : nb,
        Ins    : self.ins,
    }, nil
}

func (self *Builder) LI(v int32, dst Reg) *LoadInt {
    p := &LoadInt { Dst: dst, V: v }
    self.add(p)
    return p
}

func (self *Builder) MOV(src Operand, dst Reg) *Assign {
    p := &Assign { Dst: dst, Src: src }
    self.add(p)
    return p
}

func (self *Builder) BIN(op BinOp, l Operand, r Operand, dst Reg) *Bin {
    p := &Bin { Op: op, Dst: dst, L: l, R: r }
    self.add(p)
    return p
}

func (self *Builder) UN(op UnOp, v Operand, dst Reg) *Un {
    p := &Un { Op: op, Dst: dst, V: v }
    self.add(p)
    return p
}

func (self *Builder) CALL(fn string, dst Reg) *Call {
    p := &Call { Dst: dst, Fn: fn }
    self.add(p)
    return p
}

func (self *Builder) CALLV(fn string) *Call {
    p := &Call { Void: true, Fn: fn }
    self.add(p)
    return p
}

func (self *Builder) ICALL(ptr Operand, dst Reg) *Call {
    p := &Call { Dst: dst, Ptr: ptr }
    self.add(p)
    return p
}

func (self *Builder) ICALLV(ptr Operand) *Call {
    p := &Call { Void: true, Ptr: ptr }
    self.add(p)
    return p
}

func (self *Builder) LD(base Operand, off int32, dst Reg) *Load {
    p := &Load { Dst: dst, Base: base, Off: off }
    self.add(p)
    return p
}

func (self *Builder) ST(v Operand, base Operand, off int32) *Store {
    p := &Store { V: v, Base: base, Off: off }
    self.add(p)
    return p
}

func (self *Builder) LS(s string, dst Reg) *LoadStr {
    p := &LoadStr { Dst: dst, S: s }
    self.add(p)
    return p
}

func (self *Builder) LVT(class string, dst Reg) *LoadVTbl {
    p := &LoadVTbl { Dst: dst, Class: class }
    self.add(p)
    return p
}

func (self *Builder) PARAM(v Operand) *Param {
    p := &Param { V: v }
    self.add(p)
    return p
}

func (self *Builder) RET(v Operand) *Ret {
    p := &Ret { V: v }
    self.add(p)
    return p
}

func (self *Builder) RETV() *Ret {
    p := &Ret { Void: true }
    self.add(p)
    return p
}

func (self *Builder) JMP(to string) *Jmp {
    p := &Jmp { Label: self.jmp(to) }
    self.add(p)
    return p
}

func (self *Builder) JZ(cond Operand, to string) *Jif {
    p := &Jif { Label: self.jmp(to), Z: true, Cond: cond }
    self.add(p)
    return p
}

func (self *Builder) JNZ(cond Operand, to string) *Jif {
    p := &Jif { Label: self.jmp(to), Z: false, Cond: cond }
    self.add(p)
    return p
}
