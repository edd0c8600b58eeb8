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
    `errors`
    `testing`

    `github.com/cloudwego/tacopt/internal/tac`
    `github.com/stretchr/testify/require`
)

func buildsrc(t *testing.T, src string) *FuncBB {
    fns, err := tac.Parse(src)
    require.NoError(t, err)
    require.Len(t, fns, 1)
    fn, err := Build(fns[0])
    require.NoError(t, err)
    return fn
}

func TestBuild_StraightLine(t *testing.T) {
    fn := buildsrc(t, `
func f
    %0 = const 5
    %1 = const 3
    %2 = %0 + %1
    ret %2
`)
    require.Equal(t, 3, fn.MaxReg)
    require.Len(t, fn.Blocks, 1)
    require.Len(t, fn.Blocks[0].Ins, 3)
    require.Equal(t, &Return { V: tac.R(2) }, fn.Blocks[0].Term)
}

func TestBuild_Diamond(t *testing.T) {
    fn := buildsrc(t, `
func f
    %0 = call g
    jz %0, A
    %1 = const 1
    jmp C
A:
    %1 = const 2
C:
    ret %1
`)
    require.Len(t, fn.Blocks, 4)
    require.Equal(t, &Branch { Cond: 0, Z: true, Fail: 1, Jump: 2 }, fn.Blocks[0].Term)
    require.Equal(t, &Jump { To: 3 }, fn.Blocks[1].Term)
    require.Equal(t, &Jump { To: 3 }, fn.Blocks[2].Term)
    require.Equal(t, &Return { V: tac.R(1) }, fn.Blocks[3].Term)
    require.Empty(t, fn.Blocks[3].Ins)
    for i, bb := range fn.Blocks {
        require.Equal(t, i, bb.Id)
    }
}

func TestBuild_TrailingBranch(t *testing.T) {
    fn := buildsrc(t, `
func f
L:
    %0 = call g
    jnz %0, L
`)
    require.Len(t, fn.Blocks, 2)
    require.Equal(t, &Branch { Cond: 0, Z: false, Fail: 1, Jump: 0 }, fn.Blocks[0].Term)
    require.Equal(t, new(Exit), fn.Blocks[1].Term)
}

func TestBuild_ImmediateCondition(t *testing.T) {
    fn := buildsrc(t, `
func f
    jz 0, L
    jnz 0, L
    ret 1
L:
    ret 2
`)
    require.Len(t, fn.Blocks, 4)
    require.Equal(t, &Jump { To: 3 }, fn.Blocks[0].Term)
    require.Equal(t, &Jump { To: 2 }, fn.Blocks[1].Term)
}

func TestBuild_TrailingReturn(t *testing.T) {
    fn := buildsrc(t, "func f\n    ret\n")
    require.Len(t, fn.Blocks, 1)
    require.Equal(t, &Return { Void: true }, fn.Blocks[0].Term)
    fn = buildsrc(t, "func f\n    %0 = const 1\n")
    require.Len(t, fn.Blocks, 1)
    require.Equal(t, new(Exit), fn.Blocks[0].Term)
}

func TestBuild_Empty(t *testing.T) {
    fn, err := Build(&tac.Func { Name: "e" })
    require.NoError(t, err)
    require.Len(t, fn.Blocks, 1)
    require.Equal(t, new(Exit), fn.Blocks[0].Term)
}

func TestBuild_Errors(t *testing.T) {
    _, err := Build(&tac.Func {
        Name   : "f",
        MaxReg : 1,
        Ins    : []tac.Tac { &tac.LoadInt { Dst: 3, V: 1 } },
    })
    require.Equal(t, ERegister("f", 3, 1), err)
    _, err = Build(&tac.Func {
        Name   : "big",
        MaxReg : tac.MaxRegs + 1,
        Ins    : []tac.Tac { &tac.LoadInt { Dst: 0, V: 1 } },
    })
    require.Equal(t, ERegister("big", tac.MaxRegs, tac.MaxRegs), err)
    _, err = Build(&tac.Func {
        Name : "g",
        Ins  : []tac.Tac { &tac.Jmp { Label: 7 } },
    })
    var le tac.LabelError
    require.True(t, errors.As(err, &le))
    require.Equal(t, "L7", le.Label)
}

func TestBuild_String(t *testing.T) {
    fn := buildsrc(t, `
func f
    %0 = call g
    jz %0, A
    ret 1
A:
    ret 2
`)
    require.Equal(t, `func f
bb_0:
    %0 = call g
    if %0 == 0 goto bb_2 else goto bb_1
bb_1:
    ret 1
bb_2:
    ret 2`, fn.String())
}
