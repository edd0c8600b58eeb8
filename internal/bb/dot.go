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

    `github.com/oleiade/lane`
)

var _DotEscape = strings.NewReplacer(
    `\`, `\\`,
    `"`, `\"`,
)

func dotlabel(bb *BasicBlock) string {
    buf := strings.Split(bb.String(), "\n")
    for i, ss := range buf {
        buf[i] = _DotEscape.Replace(ss)
    }
    return strings.Join(buf, `\l`) + `\l`
}

// Dot renders the blocks reachable from the entry in Graphviz DOT format.
func (self *FuncBB) Dot() string {
    q := lane.NewQueue()
    n := make(map[int]bool)
    e := make(map[[2]int]bool)
    buf := []string {
        fmt.Sprintf(`digraph "%s" {`, _DotEscape.Replace(self.Name)),
        `    node [ fontname = "monospace" shape = "box" ]`,
        `    edge [ fontname = "monospace" ]`,
        `    START [ shape = "circle" ]`,
    }

    /* empty functions have no entry */
    if len(self.Blocks) == 0 {
        return strings.Join(append(buf, "}"), "\n")
    }

    /* breadth-first from the entry */
    buf = append(buf, `    START -> bb_0`)
    n[0] = true

    /* dump every reachable block */
    for q.Enqueue(self.Blocks[0]); !q.Empty(); {
        p := q.Dequeue().(*BasicBlock)
        buf = append(buf, fmt.Sprintf(`    bb_%d [ label = "%s" ]`, p.Id, dotlabel(p)))

        /* edge labels */
        var names []string
        switch tr := p.Term.(type) {
            case *Jump   : names = []string { "goto" }
            case *Branch : if tr.Z { names = []string { "otherwise", "== 0" } } else { names = []string { "otherwise", "!= 0" } }
        }

        /* dump every edge */
        for i, to := range p.Term.Successors() {
            if !n[to] {
                n[to] = true
                q.Enqueue(self.Blocks[to])
            }
            if edge := [2]int { p.Id, to }; !e[edge] {
                e[edge] = true
                buf = append(buf, fmt.Sprintf(`    bb_%d -> bb_%d [ label = "%s" ]`, p.Id, to, names[i]))
            }
        }
    }

    /* all done */
    buf = append(buf, "}")
    return strings.Join(buf, "\n")
}
