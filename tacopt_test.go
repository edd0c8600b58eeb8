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


package tacopt

import (
    `errors`
    `strings`
    `testing`

    `github.com/cloudwego/tacopt/internal/opts`
    `github.com/stretchr/testify/require`
)

const _TestSource = `
# max(a, b) with a known second argument
func max
    %0 = call a
    %1 = const 10
    %2 = %0 > %1
    jz %2, B
    ret %0
B:
    ret %1

func pick
    %0 = const 1
    jnz %0, T
    %1 = str "never"
    param %1
    call print
    ret 0
T:
    %2 = %0 + 41
    ret %2
`

func TestOptimize(t *testing.T) {
    out, err := Optimize(_TestSource, WithPasses("constprop"), WithStrictReturn(true))
    require.NoError(t, err)
    require.Equal(t, "func max\n" +
        "bb_0:\n" +
        "    %0 = call a\n" +
        "    %1 = const 10\n" +
        "    %2 = %0 > 10\n" +
        "    if %2 == 0 goto bb_2 else goto bb_1\n" +
        "bb_1:\n" +
        "    ret %0\n" +
        "bb_2:\n" +
        "    ret 10\n" +
        "\n" +
        "func pick\n" +
        "bb_0:\n" +
        "    %0 = const 1\n" +
        "    %2 = 1 + 41\n" +
        "    ret 42", out)
}

func TestOptimize_NoPasses(t *testing.T) {
    out, err := Optimize(_TestSource, WithPasses())
    require.NoError(t, err)
    require.Contains(t, out, "if %0 != 0 goto bb_2 else goto bb_1")
    require.Contains(t, out, `%1 = str "never"`)
}

func TestCompile_Dot(t *testing.T) {
    p, err := Compile(_TestSource)
    require.NoError(t, err)
    require.Len(t, p.Funcs, 2)
    dot := p.Dot()
    require.True(t, strings.HasPrefix(dot, `digraph "max" {`))
    require.Contains(t, dot, `digraph "pick" {`)
    require.Equal(t, 2, strings.Count(dot, "START -> bb_0"))
}

func TestOptimize_Errors(t *testing.T) {
    var se SyntaxError
    _, err := Optimize("func f\n    %0 = frob 1\n")
    require.True(t, errors.As(err, &se))
    require.Equal(t, 2, se.Line)

    _, err = Optimize("func f\n    %4000000000 = const 1\n    jz 0, L\n    ret 0\nL:\n    ret 1\n")
    require.True(t, errors.As(err, &se))
    require.Equal(t, 2, se.Line)

    var le LabelError
    _, err = Optimize("func f\n    jmp L\n")
    require.True(t, errors.As(err, &le))
    require.Equal(t, "L", le.Label)

    var me MissingReturnError
    src := "func f\n    %0 = call g\n    jz %0, L\n    ret 1\nL:\n    call h\n"
    _, err = Optimize(src, WithStrictReturn(true))
    require.True(t, errors.As(err, &me))
    _, err = Optimize(src, WithStrictReturn(false))
    require.NoError(t, err)
}

func TestOptions(t *testing.T) {
    o := optionsOf([]Option {
        WithPasses("constprop", "constprop"),
        WithStrictReturn(true),
        WithDebug(false),
    })
    require.Equal(t, opts.Options { Passes: []string { "constprop", "constprop" }, Strict: true }, o)
    o = optionsOf([]Option { WithStrictReturn(true), WithOptions(opts.Options { Debug: true }) })
    require.Equal(t, opts.Options { Debug: true }, o)
    require.Panics(t, func() { WithPasses("nope") })
}
