// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// This file contains the definitions of the arithmetic operators.

package ream

// A reduction describes how an operator folds the argument stack.
type reduction struct {
	seeded  bool // Start from the first argument rather than zero.
	divides bool // Every argument is a divisor, the seed included.
	fn      func(acc, arg Fixed) Fixed
}

var reductions = [...]reduction{
	Add:      {fn: add},
	Subtract: {fn: sub},
	Multiply: {seeded: true, fn: mul},
	Divide:   {seeded: true, divides: true, fn: div},
}

func add(a, b Fixed) Fixed { return check(a.Add(b)) }
func sub(a, b Fixed) Fixed { return check(a.Sub(b)) }
func mul(a, b Fixed) Fixed { return check(a.Mul(b)) }
func div(a, b Fixed) Fixed { return check(a.Div(b)) }
