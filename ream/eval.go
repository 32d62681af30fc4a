// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// Package ream lexes and evaluates single lines of a Lisp-like
// arithmetic notation such as (+ 1 2).
//
// Evaluation is flat. Parentheses are only checked for balance; every
// number goes onto one argument stack and every operator onto one
// operator stack, whatever the nesting. Each operator, popped in turn,
// reduces the whole argument stack, so
//
//	(+ 1 2) (* 3 4)
//
// yields two results, 24 and 10, both computed over 1 2 3 4.
package ream // import "github.com/ericrobolson/Ream/ream"

import (
	"fmt"
)

// Error is the type of the errors reported by Evaluate. The sentinel
// values below may be wrapped; test for them with errors.Is.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrUnbalancedParentheses Error = "unbalanced parentheses"
	ErrDivisionByZero        Error = "division by zero"
	ErrOverflow              Error = "fixed-point overflow"
)

// A Result is the value computed for one operator.
type Result struct {
	Op    Op
	Value Fixed
}

func (r Result) String() string { return r.Value.String() }

// abort carries an error out of an evaluation in progress.
// Evaluate recovers it; it never escapes the package.
type abort struct{ err error }

func raise(err error) {
	panic(abort{err})
}

func errorf(err Error, format string, args ...interface{}) {
	raise(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}

// check raises the error from an arithmetic operation, if any.
func check(f Fixed, err error) Fixed {
	if err != nil {
		raise(err)
	}
	return f
}

// state is the scratch space of one evaluation.
type state struct {
	open int     // Open minus close parentheses seen so far.
	ops  []Op    // Operator stack; top is last.
	args []Fixed // Argument stack; top is last.
}

// Evaluate reduces the tokens to one result per operator, most recently
// pushed operator first. With no operators there are no results. If
// the parentheses do not balance, or any operator fails, Evaluate
// returns no results at all.
func Evaluate(tokens []Token) (results []Result, err error) {
	defer func() {
		if e := recover(); e != nil {
			a, ok := e.(abort)
			if !ok {
				panic(e)
			}
			results, err = nil, a.err
		}
	}()
	s := new(state)
	s.scan(tokens)
	if s.open > 0 {
		errorf(ErrUnbalancedParentheses, "%d unclosed", s.open)
	}
	if s.open < 0 {
		errorf(ErrUnbalancedParentheses, "%d unopened", -s.open)
	}
	return s.reduce(), nil
}

// Run lexes and evaluates a line of source.
func Run(source string) ([]Result, error) {
	return Evaluate(Lex(source))
}

// scan distributes the tokens onto the stacks. Strings are ignored.
func (s *state) scan(tokens []Token) {
	for _, tok := range tokens {
		switch t := tok.(type) {
		case Paren:
			if t.Side == Open {
				s.open++
			} else {
				s.open--
			}
		case Operation:
			s.ops = append(s.ops, t.Op)
		case Number:
			s.args = append(s.args, t.Value)
		case Str:
		default:
			panic(fmt.Sprintf("ream: unknown token %T", tok))
		}
	}
}

// reduce pops each operator and applies it to the full argument stack.
// The argument stack is not consumed.
func (s *state) reduce() []Result {
	results := make([]Result, 0, len(s.ops))
	for len(s.ops) > 0 {
		op := s.ops[len(s.ops)-1]
		s.ops = s.ops[:len(s.ops)-1]
		results = append(results, Result{op, s.apply(op)})
	}
	return results
}

// apply folds the argument stack, top first, with the operator.
func (s *state) apply(op Op) Fixed {
	r := reductions[op]
	var acc Fixed
	for i := len(s.args) - 1; i >= 0; i-- {
		arg := s.args[i]
		if r.divides && arg.IsZero() {
			raise(ErrDivisionByZero)
		}
		if r.seeded && i == len(s.args)-1 {
			acc = arg
			continue
		}
		acc = r.fn(acc, arg)
	}
	return acc
}
