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
    `fmt`
)

// PassError occures when a pass cannot be found, or fails on a function.
type PassError struct {
    Pass string
    Func string
    Err  error
}

func (self PassError) Error() string {
    if self.Func == "" {
        return fmt.Sprintf("PassError(%s): %s", self.Pass, self.Err)
    } else {
        return fmt.Sprintf("PassError(%s) in function %s: %s", self.Pass, self.Func, self.Err)
    }
}

func (self PassError) Unwrap() error {
    return self.Err
}

func EPass(pass string, fn string, err error) PassError {
    return PassError {
        Pass : pass,
        Func : fn,
        Err  : err,
    }
}
