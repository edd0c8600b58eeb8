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

// MaxRegs bounds the register count of a function. Analyses allocate state
// proportional to it for every basic block.
const MaxRegs = 1 << 16

type Reg uint32

func (self Reg) String() string {
    return "%" + strconv.FormatUint(uint64(self), 10)
}

type _OperandKind uint8

const (
    _O_imm _OperandKind = iota
    _O_reg
)

// Operand is either an immediate integer or a register reference.
type Operand struct {
    k _OperandKind
    r Reg
    i int32
}

func Imm(v int32) Operand {
    return Operand {
        k: _O_imm,
        i: v,
    }
}

func R(r Reg) Operand {
    return Operand {
        k: _O_reg,
        r: r,
    }
}

func (self Operand) Reg() (Reg, bool) {
    return self.r, self.k == _O_reg
}

func (self Operand) Const() (int32, bool) {
    return self.i, self.k == _O_imm
}

func (self Operand) String() string {
    if self.k == _O_reg {
        return self.r.String()
    } else {
        return strconv.FormatInt(int64(self.i), 10)
    }
}

type (
    BinOp uint8
    UnOp  uint8
)

const (
    Add BinOp = iota
    Sub
    Mul
    Div
    Mod
    And
    Or
    Eq
    Ne
    Lt
    Le
    Gt
    Ge
)

const (
    Neg UnOp = iota
    Not
)

var _BinOpNames = [...]string {
    Add : "+",
    Sub : "-",
    Mul : "*",
    Div : "/",
    Mod : "%",
    And : "&&",
    Or  : "||",
    Eq  : "==",
    Ne  : "!=",
    Lt  : "<",
    Le  : "<=",
    Gt  : ">",
    Ge  : ">=",
}

var _UnOpNames = [...]string {
    Neg : "neg",
    Not : "not",
}

func (self BinOp) String() string {
    if int(self) < len(_BinOpNames) {
        return _BinOpNames[self]
    } else {
        panic(fmt.Sprintf("invalid binary operator: %d", self))
    }
}

func (self UnOp) String() string {
    if int(self) < len(_UnOpNames) {
        return _UnOpNames[self]
    } else {
        panic(fmt.Sprintf("invalid unary operator: %d", self))
    }
}

func b2i(v bool) int32 {
    if v {
        return 1
    } else {
        return 0
    }
}

// Eval computes `l op r` with wrapping 32-bit arithmetic. The second result
// is false when the operation has no compile-time value (division by zero).
func (self BinOp) Eval(l int32, r int32) (int32, bool) {
    switch self {
        case Add : return l + r, true
        case Sub : return l - r, true
        case Mul : return l * r, true
        case And : return b2i(l != 0 && r != 0), true
        case Or  : return b2i(l != 0 || r != 0), true
        case Eq  : return b2i(l == r), true
        case Ne  : return b2i(l != r), true
        case Lt  : return b2i(l < r), true
        case Le  : return b2i(l <= r), true
        case Gt  : return b2i(l > r), true
        case Ge  : return b2i(l >= r), true
        case Div : if r == 0 { return 0, false } else { return l / r, true }
        case Mod : if r == 0 { return 0, false } else { return l % r, true }
        default  : panic(fmt.Sprintf("invalid binary operator: %d", self))
    }
}

func (self UnOp) Eval(v int32) (int32, bool) {
    switch self {
        case Neg : return -v, true
        case Not : return b2i(v == 0), true
        default  : panic(fmt.Sprintf("invalid unary operator: %d", self))
    }
}
