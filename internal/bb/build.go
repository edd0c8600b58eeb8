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


package bb

import (
    `fmt`

    `github.com/cloudwego/tacopt/internal/tac`
)

type _Proto struct {
    ins []tac.Tac
    ctl tac.Tac
    lbl bool
}

func (self *_Proto) empty() bool {
    return len(self.ins) == 0 && self.ctl == nil && !self.lbl
}

type _GraphBuilder struct {
    f  *tac.Func
    bb []*_Proto
    lb map[int]int
}

func newGraphBuilder(f *tac.Func) *_GraphBuilder {
    return &_GraphBuilder {
        f  : f,
        bb : []*_Proto { new(_Proto) },
        lb : make(map[int]int),
    }
}

// Build splits a linear function body into basic blocks. A block starts at
// the function entry, at every label and after every jump or return.
func Build(f *tac.Func) (*FuncBB, error) {
    var err error
    var ret *FuncBB

    /* the register count must be bounded */
    if f.MaxReg > tac.MaxRegs {
        return nil, ERegister(f.Name, tac.Reg(f.MaxReg - 1), tac.MaxRegs)
    }

    /* check all the register references */
    for _, p := range f.Ins {
        tac.ForEachReg(p, func(r tac.Reg) {
            if err == nil && int(r) >= f.MaxReg {
                err = ERegister(f.Name, r, f.MaxReg)
            }
        })
    }

    /* build the graph if registers are sane */
    if err == nil {
        ret, err = newGraphBuilder(f).build()
    }

    /* all done */
    return ret, err
}

func (self *_GraphBuilder) build() (*FuncBB, error) {
    for _, p := range self.f.Ins {
        self.add(p)
    }

    /* remove the trailing block if nothing can reach it */
    if n := len(self.bb); n > 1 && self.bb[n - 1].empty() {
        if _, ok := self.bb[n - 2].ctl.(*tac.Jif); !ok {
            self.bb = self.bb[:n - 1]
        }
    }

    /* create the function */
    ret := &FuncBB {
        Name   : self.f.Name,
        MaxReg : self.f.MaxReg,
        Blocks : make([]*BasicBlock, len(self.bb)),
    }

    /* add terminators */
    for i, p := range self.bb {
        bb := &BasicBlock { Id: i, Ins: p.ins }
        ret.Blocks[i] = bb

        /* convert the control instruction */
        if tr, err := self.term(i, p.ctl); err != nil {
            return nil, err
        } else {
            bb.Term = tr
        }
    }

    /* all done */
    return ret, nil
}

func (self *_GraphBuilder) add(p tac.Tac) {
    cur := self.bb[len(self.bb) - 1]
    next := func() { cur = new(_Proto); self.bb = append(self.bb, cur) }

    /* check for instruction type */
    switch v := p.(type) {
        default: {
            cur.ins = append(cur.ins, p)
        }

        /* labels start a new block unless the current one is still empty */
        case *tac.Label: {
            if len(cur.ins) != 0 {
                next()
            }
            cur.lbl = true
            self.lb[v.Id] = len(self.bb) - 1
        }

        /* control instructions end the current block */
        case *tac.Jmp, *tac.Jif, *tac.Ret: {
            cur.ctl = p
            next()
        }
    }
}

func (self *_GraphBuilder) target(id int) (int, error) {
    if bb, ok := self.lb[id]; ok {
        return bb, nil
    } else {
        return 0, tac.ELabel(self.f.Name, fmt.Sprintf("L%d", id), "label is never defined")
    }
}

func (self *_GraphBuilder) term(i int, ctl tac.Tac) (Terminator, error) {
    switch p := ctl.(type) {
        case nil: {
            if i == len(self.bb) - 1 {
                return &Exit{}, nil
            } else {
                return &Jump { To: i + 1 }, nil
            }
        }

        /* returns */
        case *tac.Ret: {
            return &Return { V: p.V, Void: p.Void }, nil
        }

        /* unconditional jumps */
        case *tac.Jmp: {
            if to, err := self.target(p.Label); err != nil {
                return nil, err
            } else {
                return &Jump { To: to }, nil
            }
        }

        /* conditional jumps, immediate conditions are resolved right here */
        case *tac.Jif: {
            to, err := self.target(p.Label)
            if err != nil {
                return nil, err
            }

            /* condition is a register */
            if r, ok := p.Cond.Reg(); ok {
                return &Branch { Cond: r, Z: p.Z, Fail: i + 1, Jump: to }, nil
            }

            /* condition is a constant */
            if c, _ := p.Cond.Const(); (c == 0) == p.Z {
                return &Jump { To: to }, nil
            } else {
                return &Jump { To: i + 1 }, nil
            }
        }

        /* should not happen */
        default: {
            panic("invalid control instruction: " + ctl.String())
        }
    }
}
