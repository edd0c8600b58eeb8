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
    `sync/atomic`
)

var (
    FuncCount     uint64
    IterCount     uint64
    OperandCount  uint64
    BranchCount   uint64
)

func record(iter int, nops int, nbr int) {
    atomic.AddUint64(&FuncCount, 1)
    atomic.AddUint64(&IterCount, uint64(iter))
    atomic.AddUint64(&OperandCount, uint64(nops))
    atomic.AddUint64(&BranchCount, uint64(nbr))
}
