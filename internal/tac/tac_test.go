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
    `math`
    `testing`

    `github.com/stretchr/testify/require`
)

func TestTac_BinOpEval(t *testing.T) {
    tests := []struct {
        op BinOp
        l  int32
        r  int32
        v  int32
        ok bool
    } {
        { Add, 5, 3, 8, true },
        { Sub, 5, 3, 2, true },
        { Mul, -4, 3, -12, true },
        { Div, 7, 2, 3, true },
        { Div, -7, 2, -3, true },
        { Div, 7, 0, 0, false },
        { Mod, 7, 3, 1, true },
        { Mod, 7, 0, 0, false },
        { And, 2, 3, 1, true },
        { And, 2, 0, 0, true },
        { Or , 0, 0, 0, true },
        { Or , 0, 9, 1, true },
        { Eq , 4, 4, 1, true },
        { Ne , 4, 4, 0, true },
        { Lt , -1, 0, 1, true },
        { Le , 3, 3, 1, true },
        { Gt , 3, 3, 0, true },
        { Ge , 3, 3, 1, true },
        { Add, math.MaxInt32, 1, math.MinInt32, true },
        { Div, math.MinInt32, -1, math.MinInt32, true },
        { Mod, math.MinInt32, -1, 0, true },
    }
    for _, tc := range tests {
        v, ok := tc.op.Eval(tc.l, tc.r)
        require.Equal(t, tc.ok, ok, "%d %s %d", tc.l, tc.op, tc.r)
        require.Equal(t, tc.v, v, "%d %s %d", tc.l, tc.op, tc.r)
    }
}

func TestTac_UnOpEval(t *testing.T) {
    v, ok := Neg.Eval(5)
    require.True(t, ok)
    require.Equal(t, int32(-5), v)
    v, _ = Neg.Eval(math.MinInt32)
    require.Equal(t, int32(math.MinInt32), v)
    v, _ = Not.Eval(0)
    require.Equal(t, int32(1), v)
    v, _ = Not.Eval(-3)
    require.Equal(t, int32(0), v)
}

func TestTac_Operand(t *testing.T) {
    r, ok := R(3).Reg()
    require.True(t, ok)
    require.Equal(t, Reg(3), r)
    _, ok = R(3).Const()
    require.False(t, ok)
    c, ok := Imm(-2).Const()
    require.True(t, ok)
    require.Equal(t, int32(-2), c)
    _, ok = Imm(-2).Reg()
    require.False(t, ok)
    require.Equal(t, "%3", R(3).String())
    require.Equal(t, "-2", Imm(-2).String())
}

func TestTac_UsagesAndDefinitions(t *testing.T) {
    p := &Bin { Op: Add, Dst: 2, L: R(0), R: Imm(1) }
    use := p.Usages()
    require.Len(t, use, 2)
    *use[0] = Imm(7)
    require.Equal(t, Imm(7), p.L)
    require.Equal(t, []*Reg { &p.Dst }, p.Definitions())

    /* static calls read nothing, indirect calls read the pointer */
    require.Empty(t, (&Call { Fn: "f", Dst: 1 }).Usages())
    require.Len(t, (&Call { Ptr: R(4), Dst: 1 }).Usages(), 1)
    require.Empty(t, (&Call { Fn: "f", Void: true }).Definitions())
    require.Empty(t, (&Ret { Void: true }).Usages())
    require.Len(t, (&Store { V: R(0), Base: R(1) }).Usages(), 2)
}

func TestTac_BuilderLabels(t *testing.T) {
    p := CreateBuilder("loop")
    p.LI(0, 0)
    p.Label("head")
    p.JZ(R(0), "done")
    p.BIN(Sub, R(0), Imm(1), 0)
    p.JMP("head")
    p.Label("done")
    p.RET(R(0))
    fn, err := p.Build()
    require.NoError(t, err)
    require.Equal(t, 1, fn.MaxReg)
    require.Equal(t, 0, fn.Ins[1].(*Label).Id)
    require.Equal(t, 1, fn.Ins[2].(*Jif).Label)
    require.Equal(t, 0, fn.Ins[4].(*Jmp).Label)
    require.Equal(t, 1, fn.Ins[5].(*Label).Id)
}

func TestTac_BuilderLabelErrors(t *testing.T) {
    p := CreateBuilder("f")
    p.JMP("nowhere")
    _, err := p.Build()
    require.Equal(t, ELabel("f", "nowhere", "label is never defined"), err)
    p = CreateBuilder("g")
    p.Label("x")
    p.Label("x")
    _, err = p.Build()
    require.Equal(t, ELabel("g", "x", "label has already been defined"), err)
}
