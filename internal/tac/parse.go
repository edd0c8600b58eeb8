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
    `errors`
    `fmt`
    `strconv`
    `strings`
)

var _BinOps = make(map[string]BinOp, len(_BinOpNames))
var _UnOps  = make(map[string]UnOp, len(_UnOpNames))

func init() {
    for i, v := range _BinOpNames { _BinOps[v] = BinOp(i) }
    for i, v := range _UnOpNames  { _UnOps[v] = UnOp(i) }
}

type _Parser struct {
    pb *Builder
}

// Parse reads functions in the TAC text format. Each function starts with a
// `func NAME` line and extends up to the next one.
func Parse(src string) ([]*Func, error) {
    var err error
    var fn  *Func
    var ret []*Func
    var tok []string
    var ps  *_Parser

    /* parse line by line */
    for i, line := range strings.Split(src, "\n") {
        if tok, err = tokenize(line); err != nil {
            return nil, ESyntax(i + 1, line, err.Error())
        }

        /* skip empty lines */
        if len(tok) == 0 {
            continue
        }

        /* start of a new function */
        if tok[0] == "func" {
            if len(tok) != 2 || !isident(tok[1]) {
                return nil, ESyntax(i + 1, line, "invalid function header")
            }

            /* finish the previous one */
            if ps != nil {
                if fn, err = ps.pb.Build(); err != nil {
                    return nil, err
                }
                ret = append(ret, fn)
            }

            /* create a new parser */
            ps = &_Parser { pb: CreateBuilder(tok[1]) }
            continue
        }

        /* must be inside a function */
        if ps == nil {
            return nil, ESyntax(i + 1, line, "instruction outside of function")
        }

        /* parse the instruction */
        if err = ps.line(tok); err != nil {
            return nil, ESyntax(i + 1, line, err.Error())
        }
    }

    /* finish the last function */
    if ps != nil {
        if fn, err = ps.pb.Build(); err != nil {
            return nil, err
        }
        ret = append(ret, fn)
    }

    /* all done */
    return ret, nil
}

func tokenize(s string) ([]string, error) {
    var j int
    var ret []string

    /* scan every character */
    for i := 0; i < len(s); {
        switch c := s[i]; c {
            case ' ', '\t', '\r', ',': {
                i++
            }

            /* comments extend to the end of line */
            case '#': {
                return ret, nil
            }

            /* string literal, keep the quotes */
            case '"': {
                for j = i + 1; j < len(s) && s[j] != '"'; j++ {
                    if s[j] == '\\' {
                        j++
                    }
                }

                /* must be terminated */
                if j >= len(s) {
                    return nil, errors.New("unterminated string literal")
                }

                /* add the token */
                ret = append(ret, s[i:j + 1])
                i = j + 1
            }

            /* bare words */
            default: {
                for j = i; j < len(s) && !strings.ContainsRune(" \t\r,#\"", rune(s[j])); j++ {}
                ret = append(ret, s[i:j])
                i = j
            }
        }
    }

    /* all done */
    return ret, nil
}

func isident(s string) bool {
    for i, c := range s {
        switch {
            case c == '_' || c == '.' || c == '$'   : break
            case c >= 'a' && c <= 'z'               : break
            case c >= 'A' && c <= 'Z'               : break
            case c >= '0' && c <= '9' && i != 0     : break
            default                                 : return false
        }
    }
    return s != ""
}

func reg(s string) (Reg, error) {
    if !strings.HasPrefix(s, "%") {
        return 0, errors.New("invalid register: " + s)
    } else if v, err := strconv.ParseUint(s[1:], 10, 32); err != nil {
        return 0, errors.New("invalid register: " + s)
    } else if v >= MaxRegs {
        return 0, fmt.Errorf("register out of range [0, %d): %s", MaxRegs, s)
    } else {
        return Reg(v), nil
    }
}

func imm(s string) (int32, error) {
    if v, err := strconv.ParseInt(s, 10, 32); err != nil {
        return 0, errors.New("invalid integer: " + s)
    } else {
        return int32(v), nil
    }
}

func operand(s string) (Operand, error) {
    if strings.HasPrefix(s, "%") {
        r, err := reg(s)
        return R(r), err
    } else {
        v, err := imm(s)
        return Imm(v), err
    }
}

func ident(s string) (string, error) {
    if !isident(s) {
        return "", errors.New("invalid identifier: " + s)
    } else {
        return s, nil
    }
}

func (self *_Parser) line(tok []string) error {
    var err error
    var dst Reg

    /* labels */
    if len(tok) == 1 && strings.HasSuffix(tok[0], ":") {
        if name := strings.TrimSuffix(tok[0], ":"); !isident(name) {
            return errors.New("invalid label: " + name)
        } else {
            self.pb.Label(name)
            return nil
        }
    }

    /* assignments */
    if len(tok) >= 3 && tok[1] == "=" {
        if dst, err = reg(tok[0]); err != nil {
            return err
        } else {
            return self.assign(dst, tok[2:])
        }
    }

    /* statements */
    return self.statement(tok[0], tok[1:])
}

func (self *_Parser) callee(s string) (string, Operand, error) {
    if !strings.HasPrefix(s, "*") {
        fn, err := ident(s)
        return fn, Operand{}, err
    } else {
        op, err := operand(s[1:])
        return "", op, err
    }
}

func (self *_Parser) assign(dst Reg, rhs []string) error {
    var ok  bool
    var err error
    var fn  string
    var off int32
    var bop BinOp
    var uop UnOp
    var x   Operand
    var y   Operand

    /* binary expressions */
    if len(rhs) == 3 {
        if bop, ok = _BinOps[rhs[1]]; ok {
            if x, err = operand(rhs[0]); err != nil {
                return err
            } else if y, err = operand(rhs[2]); err != nil {
                return err
            } else {
                self.pb.BIN(bop, x, y, dst)
                return nil
            }
        }
    }

    /* unary expressions */
    if len(rhs) == 2 {
        if uop, ok = _UnOps[rhs[0]]; ok {
            if x, err = operand(rhs[1]); err != nil {
                return err
            } else {
                self.pb.UN(uop, x, dst)
                return nil
            }
        }
    }

    /* other expressions */
    switch {
        case len(rhs) == 2 && rhs[0] == "const": {
            if off, err = imm(rhs[1]); err == nil {
                self.pb.LI(off, dst)
            }
        }

        /* register copy */
        case len(rhs) == 2 && rhs[0] == "mov": {
            if x, err = operand(rhs[1]); err == nil {
                self.pb.MOV(x, dst)
            }
        }

        /* function calls */
        case len(rhs) == 2 && rhs[0] == "call": {
            if fn, x, err = self.callee(rhs[1]); err != nil {
                break
            } else if fn != "" {
                self.pb.CALL(fn, dst)
            } else {
                self.pb.ICALL(x, dst)
            }
        }

        /* memory loads */
        case len(rhs) == 3 && rhs[0] == "load": {
            if x, err = operand(rhs[1]); err != nil {
                break
            } else if off, err = imm(rhs[2]); err == nil {
                self.pb.LD(x, off, dst)
            }
        }

        /* string constants */
        case len(rhs) == 2 && rhs[0] == "str": {
            if fn, err = strconv.Unquote(rhs[1]); err != nil {
                err = errors.New("invalid string literal: " + rhs[1])
            } else {
                self.pb.LS(fn, dst)
            }
        }

        /* virtual tables */
        case len(rhs) == 2 && rhs[0] == "vtbl": {
            if fn, err = ident(rhs[1]); err == nil {
                self.pb.LVT(fn, dst)
            }
        }

        /* anything else */
        default: {
            err = errors.New("invalid expression")
        }
    }

    /* all done */
    return err
}

func (self *_Parser) statement(op string, args []string) error {
    var err error
    var fn  string
    var off int32
    var x   Operand
    var y   Operand

    /* check for statement type */
    switch {
        case op == "call" && len(args) == 1: {
            if fn, x, err = self.callee(args[0]); err != nil {
                break
            } else if fn != "" {
                self.pb.CALLV(fn)
            } else {
                self.pb.ICALLV(x)
            }
        }

        /* function parameters */
        case op == "param" && len(args) == 1: {
            if x, err = operand(args[0]); err == nil {
                self.pb.PARAM(x)
            }
        }

        /* returns */
        case op == "ret" && len(args) == 0: {
            self.pb.RETV()
        }

        /* returns with value */
        case op == "ret" && len(args) == 1: {
            if x, err = operand(args[0]); err == nil {
                self.pb.RET(x)
            }
        }

        /* unconditional jumps */
        case op == "jmp" && len(args) == 1: {
            if fn, err = ident(args[0]); err == nil {
                self.pb.JMP(fn)
            }
        }

        /* conditional jumps */
        case (op == "jz" || op == "jnz") && len(args) == 2: {
            if x, err = operand(args[0]); err != nil {
                break
            } else if fn, err = ident(args[1]); err != nil {
                break
            } else if op == "jz" {
                self.pb.JZ(x, fn)
            } else {
                self.pb.JNZ(x, fn)
            }
        }

        /* memory stores */
        case op == "store" && len(args) == 3: {
            if x, err = operand(args[0]); err != nil {
                break
            } else if y, err = operand(args[1]); err != nil {
                break
            } else if off, err = imm(args[2]); err == nil {
                self.pb.ST(x, y, off)
            }
        }

        /* anything else */
        default: {
            err = errors.New("invalid statement: " + op)
        }
    }

    /* all done */
    return err
}
