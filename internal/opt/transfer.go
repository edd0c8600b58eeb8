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

    `github.com/cloudwego/tacopt/internal/tac`
)

func load(env []Value, v tac.Operand) Value {
    if r, ok := v.Reg(); !ok {
        c, _ := v.Const()
        return Constant(c)
    } else if int(r) >= len(env) {
        panic(fmt.Sprintf("constprop: register %s out of range [0, %d)", r, len(env)))
    } else {
        return env[r]
    }
}

func binary(env []Value, p *tac.Bin) Value {
    if l, ok := load(env, p.L).Const(); !ok {
        return NotConstant
    } else if r, ok := load(env, p.R).Const(); !ok {
        return NotConstant
    } else if v, ok := p.Op.Eval(l, r); !ok {
        return NotConstant
    } else {
        return Constant(v)
    }
}

func unary(env []Value, p *tac.Un) Value {
    if x, ok := load(env, p.V).Const(); !ok {
        return NotConstant
    } else if v, ok := p.Op.Eval(x); !ok {
        return NotConstant
    } else {
        return Constant(v)
    }
}

// transfer applies the effect of one instruction to the state vector.
func transfer(p tac.Tac, env []Value) {
    switch v := p.(type) {
        case *tac.Bin      : env[v.Dst] = binary(env, v)
        case *tac.Un       : env[v.Dst] = unary(env, v)
        case *tac.Assign   : env[v.Dst] = load(env, v.Src)
        case *tac.LoadInt  : env[v.Dst] = Constant(v.V)
        case *tac.Load     : env[v.Dst] = NotConstant
        case *tac.LoadStr  : env[v.Dst] = NotConstant
        case *tac.LoadVTbl : env[v.Dst] = NotConstant
        case *tac.Call     : if !v.Void { env[v.Dst] = NotConstant }
    }
}
