// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package ream

import "fmt"

// TokenKind identifies which of the four token variants a Token is.
type TokenKind int

const (
	KindParenthesis TokenKind = iota
	KindOperation
	KindNumber
	KindStr
)

func (k TokenKind) String() string {
	switch k {
	case KindParenthesis:
		return "Parenthesis"
	case KindOperation:
		return "Operation"
	case KindNumber:
		return "Number"
	case KindStr:
		return "Str"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// A Token is one classified word of the input. The set of implementations
// is closed: Paren, Operation, Number and Str.
type Token interface {
	Kind() TokenKind
	String() string // Kind(payload), for tracing.
	token()
}

// ParenKind says which side of a pair a parenthesis is.
type ParenKind int

const (
	Open ParenKind = iota
	Close
)

func (p ParenKind) String() string {
	if p == Open {
		return "("
	}
	return ")"
}

// Op is one of the four arithmetic operators.
type Op int

const (
	Add Op = iota
	Subtract
	Multiply
	Divide
)

// ops maps operator symbols to operators. Indexed the other way by Symbol.
var ops = map[string]Op{
	"+": Add,
	"-": Subtract,
	"*": Multiply,
	"/": Divide,
}

// Symbol returns the source text of the operator.
func (o Op) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

func (o Op) String() string { return o.Symbol() }

type (
	// Paren is an open or close parenthesis.
	Paren struct{ Side ParenKind }
	// Operation is an arithmetic operator.
	Operation struct{ Op Op }
	// Number is a numeric literal.
	Number struct{ Value Fixed }
	// Str is any word that is not a parenthesis, operator or number.
	// Text is lower case.
	Str struct{ Text string }
)

func (Paren) Kind() TokenKind     { return KindParenthesis }
func (Operation) Kind() TokenKind { return KindOperation }
func (Number) Kind() TokenKind    { return KindNumber }
func (Str) Kind() TokenKind       { return KindStr }

func (t Paren) String() string     { return render(t.Kind(), t.Side) }
func (t Operation) String() string { return render(t.Kind(), t.Op) }
func (t Number) String() string    { return render(t.Kind(), t.Value) }
func (t Str) String() string       { return render(t.Kind(), t.Text) }

func (Paren) token()     {}
func (Operation) token() {}
func (Number) token()    {}
func (Str) token()       {}

func render(k TokenKind, payload interface{}) string {
	return fmt.Sprintf("%s(%s)", k, payload)
}
