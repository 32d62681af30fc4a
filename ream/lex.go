// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package ream

import (
	"strings"
)

// padParens surrounds every parenthesis with spaces so it always
// stands as a word of its own.
var padParens = strings.NewReplacer("(", " ( ", ")", " ) ")

// Lex splits a line of source into tokens, in the order they appear.
// It never fails: a word that is nothing else is a Str.
func Lex(source string) []Token {
	words := strings.Fields(strings.ToLower(padParens.Replace(source)))
	toks := make([]Token, 0, len(words))
	for _, w := range words {
		toks = append(toks, mkToken(w))
	}
	return toks
}

// mkToken classifies a single word. The order of the cases matters:
// a lone "-" is an operator, "-1" is a number.
func mkToken(word string) Token {
	switch word {
	case "(":
		return Paren{Open}
	case ")":
		return Paren{Close}
	}
	if op, ok := ops[word]; ok {
		return Operation{op}
	}
	if num, err := ParseFixed(word); err == nil {
		return Number{num}
	}
	return Str{word}
}
