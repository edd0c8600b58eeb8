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
    `fmt`
    `io`

    `github.com/cloudwego/tacopt/internal/bb`
    `github.com/cloudwego/tacopt/internal/tac`
    `github.com/davecgh/go-spew/spew`
)

type _Solver struct {
    fn   *bb.FuncBB
    n    int
    flow []Value
    prev []Value
    tmp  []Value
    iter int
}

func newSolver(fn *bb.FuncBB) *_Solver {
    n := fn.MaxReg
    m := len(fn.Blocks) * n

    /* entry facts for every block, plus one scratch vector */
    return &_Solver {
        fn   : fn,
        n    : n,
        flow : make([]Value, m),
        prev : make([]Value, m),
        tmp  : make([]Value, n),
    }
}

// env returns the facts that hold on entry to block i.
func (self *_Solver) env(i int) []Value {
    return self.flow[i * self.n:(i + 1) * self.n]
}

func (self *_Solver) exit(i int) []Value {
    copy(self.tmp, self.env(i))

    /* apply every instruction in order */
    for _, p := range self.fn.Blocks[i].Ins {
        transfer(p, self.tmp)
    }

    /* the scratch vector now holds the exit facts */
    return self.tmp
}

// step runs one propagate-and-transfer iteration, and reports whether any
// entry fact changed.
func (self *_Solver) step() bool {
    self.iter++
    copy(self.prev, self.flow)

    /* push the exit facts of every block into its successors */
    for i, p := range self.fn.Blocks {
        out := self.exit(i)
        for _, to := range p.Term.Successors() {
            meetInto(self.env(to), out)
        }
    }

    /* compare with the previous iteration */
    for i, v := range self.flow {
        if v != self.prev[i] {
            return true
        }
    }
    return false
}

func (self *_Solver) solve() {
    for self.step() {}
}

func (self *_Solver) fold(v *tac.Operand) bool {
    if r, ok := v.Reg(); !ok {
        return false
    } else if c, ok := self.tmp[r].Const(); !ok {
        return false
    } else {
        *v = tac.Imm(c)
        return true
    }
}

// rewrite replaces constant register reads with immediates and resolves
// branches on constant conditions, returning the number of folded operands
// and folded branches.
func (self *_Solver) rewrite() (nops int, nbr int) {
    for i, p := range self.fn.Blocks {
        copy(self.tmp, self.env(i))

        /* fold the operands, then apply the instruction */
        for _, ins := range p.Ins {
            if use, ok := ins.(tac.TacUsages); ok {
                for _, v := range use.Usages() {
                    if self.fold(v) {
                        nops++
                    }
                }
            }
            transfer(ins, self.tmp)
        }

        /* fold the terminator */
        switch tr := p.Term.(type) {
            case *bb.Return: {
                if !tr.Void && self.fold(&tr.V) {
                    nops++
                }
            }
            case *bb.Branch: {
                if c, ok := self.tmp[tr.Cond].Const(); ok {
                    p.Term = &bb.Jump { To: tr.Taken(c) }
                    nbr++
                }
            }
        }
    }
    return
}

var _TraceConfig = spew.ConfigState {
    Indent   : "    ",
    SortKeys : true,
}

type _Trace struct {
    Func       string
    Iterations int
    Entry      map[string][]Value
}

func (self *_Solver) trace(w io.Writer) {
    tr := _Trace {
        Func       : self.fn.Name,
        Iterations : self.iter,
        Entry      : make(map[string][]Value, len(self.fn.Blocks)),
    }

    /* entry facts of every block */
    for i := range self.fn.Blocks {
        tr.Entry[fmt.Sprintf("bb_%d", i)] = append([]Value(nil), self.env(i)...)
    }

    /* dump the state */
    fmt.Fprintf(w, "constprop: %s converged after %d iteration(s)\n", self.fn.Name, self.iter)
    _TraceConfig.Fdump(w, tr)
}

// ConstProp propagates integer constants through the CFG. Register reads
// that are constant on every path become immediates, and branches on a
// constant condition become jumps. The CFG is simplified after any branch
// was folded, checking for missing returns when Strict is set.
type ConstProp struct {
    Trace  io.Writer
    Strict bool
}

func (self ConstProp) Apply(fn *bb.FuncBB) error {
    if len(fn.Blocks) == 0 {
        return nil
    }

    /* find the fixed point */
    sv := newSolver(fn)
    sv.solve()

    /* dump the facts if needed */
    if self.Trace != nil {
        sv.trace(self.Trace)
    }

    /* rewrite the function */
    nops, nbr := sv.rewrite()
    record(sv.iter, nops, nbr)

    /* nothing to clean up */
    if nbr == 0 {
        return nil
    }

    /* folded branches leave dead blocks behind */
    blocks, err := bb.Simplify(fn.Blocks, self.Strict)
    if err != nil {
        fn.Blocks = nil
        return err
    }

    /* all done */
    fn.Blocks = blocks
    return nil
}
