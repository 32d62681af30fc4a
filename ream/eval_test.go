// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package ream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func results(pairs ...interface{}) []Result {
	res := []Result{}
	for i := 0; i < len(pairs); i += 2 {
		res = append(res, Result{pairs[i].(Op), MustParseFixed(pairs[i+1].(string))})
	}
	return res
}

var evalTests = []struct {
	in  string
	out []Result
}{
	{"", results()},
	{"1 2 3", results()},
	{"(foo bar)", results()},
	{"(+ 1 2)", results(Add, "3")},
	{"(+ 1 1)", results(Add, "2")},
	{"(- 1 2)", results(Subtract, "-3")},
	{"(- 5)", results(Subtract, "-5")},
	{"(* 2 3 4)", results(Multiply, "24")},
	{"(* 7)", results(Multiply, "7")},
	{"(/ 2 8)", results(Divide, "4")},
	{"(/ 8 2)", results(Divide, "0.25")},
	{"(/ 1 2 8)", results(Divide, "4")},
	{"(+ 0.5 0.25)", results(Add, "0.75")},
	{"(* -1.5 2)", results(Multiply, "-3")},
	{"(+ 1 x 2 Y)", results(Add, "3")},
	{"(+)", results(Add, "0")},
	{"(-)", results(Subtract, "0")},
	{"(*)", results(Multiply, "0")},
	{"(/)", results(Divide, "0")},
	{"(+ 1 2) (* 3 4)", results(Multiply, "24", Add, "10")},
	{"(+ 1 (* 2 3))", results(Multiply, "6", Add, "6")},
	{"(- (+ 10 5) 3)", results(Add, "18", Subtract, "-18")},
	{"(+ 1 2))(", results(Add, "3")},
	{"+ 1 2", results(Add, "3")},
}

func TestEvaluate(t *testing.T) {
	for _, test := range evalTests {
		got, err := Evaluate(Lex(test.in))
		require.NoError(t, err, test.in)
		assert.Equal(t, test.out, got, "Evaluate(%q)", test.in)
	}
}

var evalErrorTests = []struct {
	in  string
	err error
}{
	{"(+ 1 2", ErrUnbalancedParentheses},
	{"+ 1 2)", ErrUnbalancedParentheses},
	{"((", ErrUnbalancedParentheses},
	{"(/ 4 0) (+ 1", ErrUnbalancedParentheses},
	{"(/ 4 0)", ErrDivisionByZero},
	{"(/ 0 4)", ErrDivisionByZero},
	{"(/ 4 0.0001)", ErrDivisionByZero}, // Rounds to zero.
	{"(+ 1 0) (/ 2 3)", ErrDivisionByZero},
	{"(/ 1 0) (+ 2 3)", ErrDivisionByZero},
	{"(* 1000 1000)", ErrOverflow},
	{"(+ 524287 1)", ErrOverflow},
	{"(- -524288)", ErrOverflow},
	{"(/ 0.001 1000)", ErrOverflow},
}

func TestEvaluateErrors(t *testing.T) {
	for _, test := range evalErrorTests {
		got, err := Evaluate(Lex(test.in))
		assert.ErrorIs(t, err, test.err, "Evaluate(%q)", test.in)
		assert.Nil(t, got, "Evaluate(%q) returned partial results", test.in)
	}
}

func TestErrorKindsDistinct(t *testing.T) {
	_, unbalanced := Run("(+ 1 2")
	_, divZero := Run("(/ 4 0)")
	assert.False(t, errors.Is(unbalanced, ErrDivisionByZero))
	assert.False(t, errors.Is(divZero, ErrUnbalancedParentheses))
	assert.EqualError(t, unbalanced, "unbalanced parentheses: 1 unclosed")
	_, extra := Run("+ 1 2))")
	assert.EqualError(t, extra, "unbalanced parentheses: 2 unopened")
	assert.EqualError(t, divZero, "division by zero")
}

func TestEvaluateTokens(t *testing.T) {
	// Built by hand, not lexed.
	toks := []Token{lpar, Operation{Add}, num("1"), Str{"ignored"}, num("2.5"), rpar}
	got, err := Evaluate(toks)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "3.5", got[0].String())
	assert.Equal(t, Add, got[0].Op)
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	toks := Lex("(+ 1 2) (* 3 4)")
	saved := append([]Token(nil), toks...)
	_, err := Evaluate(toks)
	require.NoError(t, err)
	assert.Equal(t, saved, toks)
}

func TestRun(t *testing.T) {
	got, err := Run("(* 2 3 4)")
	require.NoError(t, err)
	assert.Equal(t, results(Multiply, "24"), got)
}
