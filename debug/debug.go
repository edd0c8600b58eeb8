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


package debug

import (
	"sync/atomic"

	"github.com/cloudwego/tacopt/internal/opt"
)

// A Stats records statistics about the optimizer.
type Stats struct {
	ConstProp PassStats
}

// A PassStats records statistics about an optimization pass.
type PassStats struct {
	Funcs      int
	Iterations int
	Operands   int
	Branches   int
}

// GetStats returns statistics of the optimizer.
func GetStats() Stats {
	return Stats{
		ConstProp: PassStats{
			Funcs:      int(atomic.LoadUint64(&opt.FuncCount)),
			Iterations: int(atomic.LoadUint64(&opt.IterCount)),
			Operands:   int(atomic.LoadUint64(&opt.OperandCount)),
			Branches:   int(atomic.LoadUint64(&opt.BranchCount)),
		},
	}
}
