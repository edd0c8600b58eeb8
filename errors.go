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
    `github.com/cloudwego/tacopt/internal/bb`
    `github.com/cloudwego/tacopt/internal/opt`
    `github.com/cloudwego/tacopt/internal/tac`
)

type (
    // SyntaxError occures when failed to parse the TAC source.
    SyntaxError = tac.SyntaxError

    // LabelError occures when a label is defined twice or never defined.
    LabelError = tac.LabelError

    // RegisterError occures when a register is out of the function's range.
    RegisterError = bb.RegisterError

    // TargetError occures when a block jumps to a block that does not exist.
    TargetError = bb.TargetError

    // MissingReturnError occures in strict mode, when control may reach the
    // end of a function that returns a value.
    MissingReturnError = bb.MissingReturnError

    // PassError occures when an optimization pass fails on a function.
    PassError = opt.PassError
)
