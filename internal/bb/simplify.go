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
    `github.com/oleiade/lane`
)

// Simplify cleans up a block list after its terminators were changed. It
// threads jumps through empty blocks, merges single-entry chains and removes
// blocks that are unreachable from the entry, renumbering the survivors. The
// input list is consumed. When strict is set, a reachable block that falls
// off the end of a function which returns a value elsewhere is an error.
func Simplify(blocks []*BasicBlock, strict bool) ([]*BasicBlock, error) {
    if len(blocks) == 0 {
        return blocks, nil
    }

    /* check every edge */
    if err := validate(blocks); err != nil {
        return nil, err
    }

    /* thread jumps, then drop what became unreachable */
    normalize(blocks)
    thread(blocks)
    normalize(blocks)
    blocks = compact(blocks)

    /* merge chains, merged blocks are no longer reachable */
    merge(blocks)
    blocks = compact(blocks)

    /* check for missing returns if needed */
    if strict {
        if err := returns(blocks); err != nil {
            return nil, err
        }
    }

    /* all done */
    return blocks, nil
}

func validate(blocks []*BasicBlock) error {
    for i, bb := range blocks {
        bb.Id = i

        /* blocks without terminators fall off the end */
        if bb.Term == nil {
            bb.Term = new(Exit)
        }

        /* check every successor */
        for _, to := range bb.Term.Successors() {
            if to < 0 || to >= len(blocks) {
                return ETarget(i, to)
            }
        }
    }
    return nil
}

func normalize(blocks []*BasicBlock) {
    for _, bb := range blocks {
        if sw, ok := bb.Term.(*Branch); ok && sw.Fail == sw.Jump {
            bb.Term = &Jump { To: sw.Jump }
        }
    }
}

func forward(blocks []*BasicBlock, to int) int {
    var ok bool
    var sw *Jump

    /* follow empty blocks that only jump, the entry block must stay */
    seen := make(map[int]bool)
    next := to

    /* find the final destination */
    for {
        bb := blocks[next]
        sw, ok = bb.Term.(*Jump)

        /* not a forwarding block */
        if next == 0 || len(bb.Ins) != 0 || !ok {
            return next
        }

        /* cycles of empty blocks are kept as they are */
        if seen[next] {
            return to
        }

        /* move to the next one */
        seen[next] = true
        next = sw.To
    }
}

func thread(blocks []*BasicBlock) {
    for _, bb := range blocks {
        retarget(bb.Term, func(to int) int {
            return forward(blocks, to)
        })
    }
}

func merge(blocks []*BasicBlock) {
    q := lane.NewQueue()
    pred := make([]int, len(blocks))

    /* count the incoming edges */
    for _, bb := range blocks {
        for _, to := range bb.Term.Successors() {
            pred[to]++
        }
    }

    /* check every block, a merged block gets another chance */
    for _, bb := range blocks {
        q.Enqueue(bb)
    }

    /* merge until nothing changes */
    for !q.Empty() {
        bb := q.Dequeue().(*BasicBlock)
        sw, ok := bb.Term.(*Jump)

        /* only jumps to a single-entry block, other than itself or the entry */
        if !ok || sw.To == bb.Id || sw.To == 0 || pred[sw.To] != 1 {
            continue
        }

        /* absorb the successor */
        to := blocks[sw.To]
        bb.Ins = append(bb.Ins, to.Ins...)
        bb.Term = to.Term

        /* the successor is now orphaned */
        pred[to.Id] = 0
        to.Ins, to.Term = nil, new(Exit)
        q.Enqueue(bb)
    }
}

func compact(blocks []*BasicBlock) []*BasicBlock {
    mark := reachable(blocks)
    index := make([]int, len(blocks))
    ret := make([]*BasicBlock, 0, len(blocks))

    /* keep only the reachable blocks, in their original order */
    for i, bb := range blocks {
        if mark[i] {
            index[i] = len(ret)
            ret = append(ret, bb)
        }
    }

    /* renumber the blocks and remap all the edges */
    for i, bb := range ret {
        bb.Id = i
        retarget(bb.Term, func(to int) int { return index[to] })
    }

    /* all done */
    return ret
}

func returns(blocks []*BasicBlock) error {
    val := false
    exit := -1

    /* find value returns and fall-off exits */
    for _, bb := range blocks {
        switch p := bb.Term.(type) {
            case *Return : if !p.Void { val = true }
            case *Exit   : if exit < 0 { exit = bb.Id }
        }
    }

    /* mixing them is an error */
    if val && exit >= 0 {
        return EMissingReturn(exit)
    } else {
        return nil
    }
}
