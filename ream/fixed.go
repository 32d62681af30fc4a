// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// This file contains the fixed-point number type and its
// arithmetic.

package ream

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Fixed is a signed fixed-point number with 20 integer bits (sign
// included) and 12 fractional bits. The zero value is 0.
type Fixed int32

const (
	fracBits = 12
	one      = 1 << fracBits

	// pow5 is 10^fracBits / 2^fracBits, so raw*pow5 is the value
	// scaled by 10^fracBits, exactly.
	pow5 = 244140625
)

var (
	scale  = decimal.NewFromInt(one)
	minRaw = decimal.NewFromInt(math.MinInt32)
	maxRaw = decimal.NewFromInt(math.MaxInt32)
)

// ParseFixed parses a decimal literal: an optional sign, digits, and an
// optional fraction. Values are rounded half to even to the nearest
// 1/4096. Literals outside the representable range are an error.
func ParseFixed(s string) (Fixed, error) {
	if !isNumber(s) {
		return 0, fmt.Errorf("bad number syntax: %q", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("bad number syntax: %q: %w", s, err)
	}
	raw := d.Mul(scale).RoundBank(0)
	if raw.LessThan(minRaw) || raw.GreaterThan(maxRaw) {
		return 0, fmt.Errorf("number out of range: %s: %w", s, ErrOverflow)
	}
	return Fixed(raw.IntPart()), nil
}

// MustParseFixed is like ParseFixed but panics if s is not a number.
func MustParseFixed(s string) Fixed {
	f, err := ParseFixed(s)
	if err != nil {
		panic(err)
	}
	return f
}

// isNumber reports whether s has the shape [+-]digits[.digits], with at
// least one digit somewhere.
func isNumber(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	digits, dot := 0, false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

// String returns the exact decimal value of f, without trailing zeros.
func (f Fixed) String() string {
	return f.Decimal().String()
}

// Decimal returns f as an exact decimal. Every value has a terminating
// expansion of at most 12 fraction digits.
func (f Fixed) Decimal() decimal.Decimal {
	return decimal.New(int64(f)*pow5, -fracBits)
}

// IsZero reports whether f is exactly zero.
func (f Fixed) IsZero() bool { return f == 0 }

// Arithmetic. Every operation is computed in 64 bits and then checked
// against the 32-bit range; nothing wraps.

func (f Fixed) Add(g Fixed) (Fixed, error) { return narrow(int64(f) + int64(g)) }
func (f Fixed) Sub(g Fixed) (Fixed, error) { return narrow(int64(f) - int64(g)) }

// Mul truncates toward zero.
func (f Fixed) Mul(g Fixed) (Fixed, error) {
	return narrow(int64(f) * int64(g) / one)
}

// Div truncates toward zero.
func (f Fixed) Div(g Fixed) (Fixed, error) {
	if g == 0 {
		return 0, ErrDivisionByZero
	}
	return narrow(int64(f) * one / int64(g))
}

func narrow(raw int64) (Fixed, error) {
	if raw < math.MinInt32 || raw > math.MaxInt32 {
		return 0, ErrOverflow
	}
	return Fixed(raw), nil
}
