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
    `strconv`
)

type _ValueKind uint8

const (
    _V_unknown _ValueKind = iota
    _V_const
    _V_nac
)

// Value is the abstract value of a register. The zero value is Unknown.
type Value struct {
    k _ValueKind
    c int32
}

var (
    Unknown     = Value { k: _V_unknown }
    NotConstant = Value { k: _V_nac }
)

func Constant(c int32) Value {
    return Value {
        k: _V_const,
        c: c,
    }
}

func (self Value) IsUnknown() bool {
    return self.k == _V_unknown
}

func (self Value) IsNotConstant() bool {
    return self.k == _V_nac
}

// Const returns the constant held by the value, if any.
func (self Value) Const() (int32, bool) {
    return self.c, self.k == _V_const
}

// Meet returns the greatest lower bound of two values.
func (self Value) Meet(other Value) Value {
    switch {
        case self.k == _V_unknown                : return other
        case other.k == _V_unknown               : return self
        case self.k == _V_const && self == other : return self
        default                                  : return NotConstant
    }
}

// Le reports whether self is at or below other in the lattice.
func (self Value) Le(other Value) bool {
    return self.Meet(other) == self
}

func (self Value) String() string {
    switch self.k {
        case _V_unknown : return "unknown"
        case _V_const   : return strconv.FormatInt(int64(self.c), 10)
        default         : return "nac"
    }
}

func meetInto(dst []Value, src []Value) {
    for i, v := range src {
        dst[i] = dst[i].Meet(v)
    }
}
