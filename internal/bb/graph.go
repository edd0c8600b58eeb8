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
    `gonum.org/v1/gonum/graph`
    `gonum.org/v1/gonum/graph/simple`
    `gonum.org/v1/gonum/graph/traverse`
)

func buildGraph(blocks []*BasicBlock) *simple.DirectedGraph {
    g := simple.NewDirectedGraph()

    /* add every block */
    for i := range blocks {
        g.AddNode(simple.Node(i))
    }

    /* add every edge, self loops do not affect reachability */
    for i, bb := range blocks {
        for _, to := range bb.Term.Successors() {
            if to != i && !g.HasEdgeFromTo(int64(i), int64(to)) {
                g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(to)))
            }
        }
    }

    /* all done */
    return g
}

// reachable marks every block that can be reached from the entry block.
func reachable(blocks []*BasicBlock) []bool {
    ret := make([]bool, len(blocks))
    dfs := traverse.DepthFirst {
        Visit: func(n graph.Node) { ret[n.ID()] = true },
    }

    /* walk from the entry */
    if len(blocks) != 0 {
        dfs.Walk(buildGraph(blocks), simple.Node(0), nil)
    }

    /* all done */
    return ret
}
