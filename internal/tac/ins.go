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
    `fmt`
    `strconv`
)

type Tac interface {
    fmt.Stringer
    tac()
}

func (*Bin)      tac() {}
func (*Un)       tac() {}
func (*Assign)   tac() {}
func (*Call)     tac() {}
func (*LoadInt)  tac() {}
func (*Load)     tac() {}
func (*LoadStr)  tac() {}
func (*LoadVTbl) tac() {}
func (*Param)    tac() {}
func (*Ret)      tac() {}
func (*Label)    tac() {}
func (*Jmp)      tac() {}
func (*Jif)      tac() {}
func (*Store)    tac() {}

// TacUsages is implemented by instructions that read operands. Each returned
// pointer refers to an operand slot that may be rewritten in place.
type TacUsages interface {
    Tac
    Usages() []*Operand
}

// TacDefinitions is implemented by instructions that write registers.
type TacDefinitions interface {
    Tac
    Definitions() []*Reg
}

type Bin struct {
    Op  BinOp
    Dst Reg
    L   Operand
    R   Operand
}

func (self *Bin) String() string {
    return fmt.Sprintf("%s = %s %s %s", self.Dst, self.L, self.Op, self.R)
}

func (self *Bin) Usages() []*Operand {
    return []*Operand { &self.L, &self.R }
}

func (self *Bin) Definitions() []*Reg {
    return []*Reg { &self.Dst }
}

type Un struct {
    Op  UnOp
    Dst Reg
    V   Operand
}

func (self *Un) String() string {
    return fmt.Sprintf("%s = %s %s", self.Dst, self.Op, self.V)
}

func (self *Un) Usages() []*Operand {
    return []*Operand { &self.V }
}

func (self *Un) Definitions() []*Reg {
    return []*Reg { &self.Dst }
}

type Assign struct {
    Dst Reg
    Src Operand
}

func (self *Assign) String() string {
    return fmt.Sprintf("%s = mov %s", self.Dst, self.Src)
}

func (self *Assign) Usages() []*Operand {
    return []*Operand { &self.Src }
}

func (self *Assign) Definitions() []*Reg {
    return []*Reg { &self.Dst }
}

// Call invokes Fn by name, or the function whose address is held in Ptr
// when Fn is empty. Void calls have no destination.
type Call struct {
    Dst  Reg
    Void bool
    Fn   string
    Ptr  Operand
}

func (self *Call) String() string {
    var fn string
    if fn = self.Fn; fn == "" {
        fn = "*" + self.Ptr.String()
    }
    if self.Void {
        return "call " + fn
    } else {
        return fmt.Sprintf("%s = call %s", self.Dst, fn)
    }
}

func (self *Call) Usages() []*Operand {
    if self.Fn != "" {
        return nil
    } else {
        return []*Operand { &self.Ptr }
    }
}

func (self *Call) Definitions() []*Reg {
    if self.Void {
        return nil
    } else {
        return []*Reg { &self.Dst }
    }
}

type LoadInt struct {
    Dst Reg
    V   int32
}

func (self *LoadInt) String() string {
    return fmt.Sprintf("%s = const %d", self.Dst, self.V)
}

func (self *LoadInt) Definitions() []*Reg {
    return []*Reg { &self.Dst }
}

type Load struct {
    Dst  Reg
    Base Operand
    Off  int32
}

func (self *Load) String() string {
    return fmt.Sprintf("%s = load %s, %d", self.Dst, self.Base, self.Off)
}

func (self *Load) Usages() []*Operand {
    return []*Operand { &self.Base }
}

func (self *Load) Definitions() []*Reg {
    return []*Reg { &self.Dst }
}

type LoadStr struct {
    Dst Reg
    S   string
}

func (self *LoadStr) String() string {
    return fmt.Sprintf("%s = str %s", self.Dst, strconv.Quote(self.S))
}

func (self *LoadStr) Definitions() []*Reg {
    return []*Reg { &self.Dst }
}

type LoadVTbl struct {
    Dst   Reg
    Class string
}

func (self *LoadVTbl) String() string {
    return fmt.Sprintf("%s = vtbl %s", self.Dst, self.Class)
}

func (self *LoadVTbl) Definitions() []*Reg {
    return []*Reg { &self.Dst }
}

type Param struct {
    V Operand
}

func (self *Param) String() string {
    return "param " + self.V.String()
}

func (self *Param) Usages() []*Operand {
    return []*Operand { &self.V }
}

type Ret struct {
    V    Operand
    Void bool
}

func (self *Ret) String() string {
    if self.Void {
        return "ret"
    } else {
        return "ret " + self.V.String()
    }
}

func (self *Ret) Usages() []*Operand {
    if self.Void {
        return nil
    } else {
        return []*Operand { &self.V }
    }
}

type Label struct {
    Id int
}

func (self *Label) String() string {
    return fmt.Sprintf("L%d:", self.Id)
}

type Jmp struct {
    Label int
}

func (self *Jmp) String() string {
    return fmt.Sprintf("jmp L%d", self.Label)
}

// Jif transfers control to Label when `(Cond == 0) == Z`, and falls through
// to the next instruction otherwise.
type Jif struct {
    Label int
    Z     bool
    Cond  Operand
}

func (self *Jif) String() string {
    if self.Z {
        return fmt.Sprintf("jz %s, L%d", self.Cond, self.Label)
    } else {
        return fmt.Sprintf("jnz %s, L%d", self.Cond, self.Label)
    }
}

func (self *Jif) Usages() []*Operand {
    return []*Operand { &self.Cond }
}

type Store struct {
    V    Operand
    Base Operand
    Off  int32
}

func (self *Store) String() string {
    return fmt.Sprintf("store %s, %s, %d", self.V, self.Base, self.Off)
}

func (self *Store) Usages() []*Operand {
    return []*Operand { &self.V, &self.Base }
}
