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
    `fmt`
)

// SyntaxError occures when the TAC source text is malformed.
type SyntaxError struct {
    Line   int
    Src    string
    Reason string
}

func (self SyntaxError) Error() string {
    return fmt.Sprintf("Syntax error at line %d: %s", self.Line, self.Reason)
}

// LabelError occures when a label is defined twice or never defined.
type LabelError struct {
    Func   string
    Label  string
    Reason string
}

func (self LabelError) Error() string {
    return fmt.Sprintf("LabelError(%s, %s): %s", self.Func, self.Label, self.Reason)
}

func ESyntax(line int, src string, reason string) SyntaxError {
    return SyntaxError {
        Line   : line,
        Src    : src,
        Reason : reason,
    }
}

func ELabel(fn string, label string, reason string) LabelError {
    return LabelError {
        Func   : fn,
        Label  : label,
        Reason : reason,
    }
}
