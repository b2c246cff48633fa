// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package system

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clockguard/tcc/pkg/ast"
)

// ParseExpr reads a single expression from the tiny S-expression literal
// format used by CLI/test fixtures:
//
//	(const 5)
//	(var "x")
//	(index (var "a") (const 2))
//	(neg e) (not e)
//	(add a b) (sub a b) (mul a b) (div a b) (mod a b)
//	(lt a b) (le a b) (eq a b) (ne a b) (ge a b) (gt a b)
//	(and a b)
//
// This is explicitly not a claim about the real surface grammar; it exists
// only so this module's outer boundary has something to decode from text.
func ParseExpr(src string) (ast.Expr, error) {
	p := &literalParser{toks: tokenize(src)}

	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if !p.atEnd() {
		return nil, fmt.Errorf("system: trailing input after expression: %q", p.remainder())
	}

	return e, nil
}

// ParseStmt reads a single statement from the same literal format:
//
//	(nop)
//	(assign lvalue rvalue)
//	(seq a b)
func ParseStmt(src string) (ast.Stmt, error) {
	p := &literalParser{toks: tokenize(src)}

	s, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	if !p.atEnd() {
		return nil, fmt.Errorf("system: trailing input after statement: %q", p.remainder())
	}

	return s, nil
}

func tokenize(src string) []string {
	var toks []string

	i := 0
	for i < len(src) {
		c := src[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(' || c == ')':
			toks = append(toks, string(c))
			i++
		case c == '"':
			j := i + 1
			for j < len(src) && src[j] != '"' {
				j++
			}

			toks = append(toks, src[i:j+1])
			i = j + 1
		default:
			j := i
			for j < len(src) && !strings.ContainsRune(" \t\n\r()", rune(src[j])) {
				j++
			}

			toks = append(toks, src[i:j])
			i = j
		}
	}

	return toks
}

type literalParser struct {
	toks []string
	pos  int
}

func (p *literalParser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *literalParser) remainder() string { return strings.Join(p.toks[p.pos:], " ") }

func (p *literalParser) next() (string, error) {
	if p.atEnd() {
		return "", fmt.Errorf("system: unexpected end of input")
	}

	t := p.toks[p.pos]
	p.pos++

	return t, nil
}

func (p *literalParser) expect(tok string) error {
	t, err := p.next()
	if err != nil {
		return err
	}

	if t != tok {
		return fmt.Errorf("system: expected %q, got %q", tok, t)
	}

	return nil
}

// parseExpr parses "(head ...)"; a quoted string or any other bare token
// is never an expression on its own and is rejected.
func (p *literalParser) parseExpr() (ast.Expr, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}

	head, err := p.next()
	if err != nil {
		return nil, err
	}

	var result ast.Expr

	switch head {
	case "const":
		v, err := p.nextInt()
		if err != nil {
			return nil, err
		}

		result = ast.NewConst(v)

	case "var":
		name, err := p.nextString()
		if err != nil {
			return nil, err
		}

		result = ast.NewVarRef(name)

	case "index":
		base, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		baseRef, ok := base.(*ast.VarRef)
		if !ok {
			return nil, fmt.Errorf("system: index base must be (var \"name\")")
		}

		idx, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		result = ast.NewArrayAccess(baseRef, idx)

	case "neg":
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		result = ast.NewUnary(ast.Neg, x)

	case "not":
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		result = ast.NewUnary(ast.Not, x)

	default:
		op, ok := binaryOps[head]
		if !ok {
			return nil, fmt.Errorf("system: unknown expression head %q", head)
		}

		l, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		r, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		result = ast.NewBinary(op, l, r)
	}

	if err := p.expect(")"); err != nil {
		return nil, err
	}

	return result, nil
}

var binaryOps = map[string]ast.BinaryOp{
	"add": ast.Add, "sub": ast.Sub, "mul": ast.Mul, "div": ast.Div, "mod": ast.Mod,
	"lt": ast.Lt, "le": ast.Le, "eq": ast.Eq, "ne": ast.Ne, "ge": ast.Ge, "gt": ast.Gt,
	"and": ast.And,
}

func (p *literalParser) parseStmt() (ast.Stmt, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}

	head, err := p.next()
	if err != nil {
		return nil, err
	}

	var result ast.Stmt

	switch head {
	case "nop":
		result = ast.NewNop()

	case "assign":
		target, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		lv, ok := target.(ast.Lvalue)
		if !ok {
			return nil, fmt.Errorf("system: assign target must be an lvalue")
		}

		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		result = ast.NewAssign(lv, value)

	case "seq":
		first, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		second, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		result = ast.NewSequence(first, second)

	default:
		return nil, fmt.Errorf("system: unknown statement head %q", head)
	}

	if err := p.expect(")"); err != nil {
		return nil, err
	}

	return result, nil
}

func (p *literalParser) nextInt() (int64, error) {
	t, err := p.next()
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseInt(t, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("system: expected integer, got %q", t)
	}

	return v, nil
}

func (p *literalParser) nextString() (string, error) {
	t, err := p.next()
	if err != nil {
		return "", err
	}

	if len(t) < 2 || t[0] != '"' || t[len(t)-1] != '"' {
		return "", fmt.Errorf("system: expected quoted string, got %q", t)
	}

	return t[1 : len(t)-1], nil
}
