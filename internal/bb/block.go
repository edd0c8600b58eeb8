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
    `strings`

    `github.com/cloudwego/tacopt/internal/tac`
)

type Terminator interface {
    fmt.Stringer
    Successors() []int
    terminator()
}

func (*Jump)   terminator() {}
func (*Branch) terminator() {}
func (*Return) terminator() {}
func (*Exit)   terminator() {}

type Jump struct {
    To int
}

func (self *Jump) String() string {
    return fmt.Sprintf("goto bb_%d", self.To)
}

func (self *Jump) Successors() []int {
    return []int { self.To }
}

// Branch transfers control to Jump when `(Cond == 0) == Z`, and to Fail
// otherwise.
type Branch struct {
    Cond tac.Reg
    Z    bool
    Fail int
    Jump int
}

func (self *Branch) String() string {
    if self.Z {
        return fmt.Sprintf("if %s == 0 goto bb_%d else goto bb_%d", self.Cond, self.Jump, self.Fail)
    } else {
        return fmt.Sprintf("if %s != 0 goto bb_%d else goto bb_%d", self.Cond, self.Jump, self.Fail)
    }
}

func (self *Branch) Successors() []int {
    return []int { self.Fail, self.Jump }
}

// Taken returns the target selected when the condition register holds c.
func (self *Branch) Taken(c int32) int {
    if (c == 0) == self.Z {
        return self.Jump
    } else {
        return self.Fail
    }
}

type Return struct {
    V    tac.Operand
    Void bool
}

func (self *Return) String() string {
    if self.Void {
        return "ret"
    } else {
        return "ret " + self.V.String()
    }
}

func (self *Return) Successors() []int {
    return nil
}

// Exit marks a block that falls off the end of the function.
type Exit struct{}

func (*Exit) String() string {
    return "exit"
}

func (*Exit) Successors() []int {
    return nil
}

type BasicBlock struct {
    Id   int
    Ins  []tac.Tac
    Term Terminator
}

func (self *BasicBlock) String() string {
    buf := make([]string, 0, len(self.Ins) + 2)
    buf = append(buf, fmt.Sprintf("bb_%d:", self.Id))

    /* dump every instruction */
    for _, v := range self.Ins {
        buf = append(buf, "    " + v.String())
    }

    /* and the terminator */
    buf = append(buf, "    " + self.Term.String())
    return strings.Join(buf, "\n")
}

// FuncBB is a function as a list of basic blocks. Block 0 is the entry, and
// every block's Id equals its index in Blocks.
type FuncBB struct {
    Name   string
    MaxReg int
    Blocks []*BasicBlock
}

func (self *FuncBB) String() string {
    buf := make([]string, 0, len(self.Blocks) + 1)
    buf = append(buf, "func " + self.Name)

    /* dump every block */
    for _, bb := range self.Blocks {
        buf = append(buf, bb.String())
    }

    /* join them together */
    return strings.Join(buf, "\n")
}

func retarget(tr Terminator, fn func(int) int) {
    switch p := tr.(type) {
        case *Jump   : p.To = fn(p.To)
        case *Branch : p.Fail, p.Jump = fn(p.Fail), fn(p.Jump)
    }
}
