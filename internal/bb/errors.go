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

// TargetError occures when a terminator refers to a block that does not exist.
type TargetError struct {
    Block  int
    Target int
}

func (self TargetError) Error() string {
    return fmt.Sprintf("TargetError(bb_%d): invalid successor bb_%d", self.Block, self.Target)
}

// MissingReturnError occures when a block falls off the end of a function
// that returns a value elsewhere.
type MissingReturnError struct {
    Block int
}

func (self MissingReturnError) Error() string {
    return fmt.Sprintf("MissingReturnError(bb_%d): control reaches the end of a non-void function", self.Block)
}

// RegisterError occures when an instruction refers to a register that is
// not below the function's register count.
type RegisterError struct {
    Func   string
    Reg    tac.Reg
    MaxReg int
}

func (self RegisterError) Error() string {
    return fmt.Sprintf("RegisterError(%s): register %s out of range [0, %d)", self.Func, self.Reg, self.MaxReg)
}

func ETarget(block int, target int) TargetError {
    return TargetError {
        Block  : block,
        Target : target,
    }
}

func EMissingReturn(block int) MissingReturnError {
    return MissingReturnError {
        Block: block,
    }
}

func ERegister(fn string, reg tac.Reg, max int) RegisterError {
    return RegisterError {
        Func   : fn,
        Reg    : reg,
        MaxReg : max,
    }
}
