// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// Ream is a line-at-a-time calculator for a small Lisp-like notation.
//
// Each input line is lexed into parentheses, the operators + - * /,
// numbers and other words, and then reduced. The reduction is flat:
// parentheses must balance but do not group anything. All the numbers
// on the line form one argument stack and every operator on the line,
// last first, is applied to that whole stack, printing one result per
// operator:
//
//	REPL -> (+ 1 2)
//	3
//	REPL -> (+ 1 2) (* 3 4)
//	24
//	10
//
// Numbers are fixed-point, with 20 integer and 12 fractional bits.
// Unbalanced parentheses, division by zero and overflow are reported
// and the line is discarded.
//
// Files named on the command line are evaluated first, one expression
// per line, before reading standard input.
package main // import "github.com/ericrobolson/Ream"

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var version = "dev"

func main() {
	cfg, files, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := newLogger(cfg.LogLevel, os.Stderr)
	logger.Debug().Str("version", version).Msg("starting")

	r := &repl{
		cfg:    cfg,
		out:    os.Stdout,
		errOut: os.Stderr,
		log:    logger,
	}
	for _, file := range files {
		if err := r.load(file); err != nil {
			logger.Fatal().Err(err).Str("file", file).Msg("load failed")
		}
	}
	if err := r.input(os.Stdin, true); err != nil {
		logger.Fatal().Err(err).Msg("read failed")
	}
}

// newLogger returns a console logger at the named level. An unknown or
// empty level means info.
func newLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().Timestamp().Str("service", "ream").Logger().
		Level(lvl)
}
