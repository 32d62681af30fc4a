// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ericrobolson/Ream/ream"
)

// repl evaluates input one line at a time. Results go to out, one per
// line; evaluation errors go to errOut and do not stop the loop.
type repl struct {
	cfg    config
	out    io.Writer
	errOut io.Writer
	log    zerolog.Logger
}

// load reads the named source file and evaluates each of its lines.
func (r *repl) load(file string) error {
	fd, err := os.Open(file)
	if err != nil {
		return err
	}
	defer fd.Close()
	r.log.Info().Str("file", file).Msg("loading")
	if err := r.input(fd, false); err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	return nil
}

// input runs the loop to EOF. The prompt is shown only if prompt is
// set and the configuration allows it.
func (r *repl) input(rd io.Reader, prompt bool) error {
	scanner := bufio.NewScanner(rd)
	for {
		if prompt && r.cfg.ShowPrompt {
			fmt.Fprint(r.out, r.cfg.Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		r.line(scanner.Text())
	}
}

// line lexes and evaluates one line of input.
func (r *repl) line(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	toks := ream.Lex(text)
	for _, tok := range toks {
		r.log.Debug().Stringer("token", tok).Msg("read")
		if r.cfg.Trace {
			fmt.Fprintf(r.out, "read: %s\n", tok)
		}
	}
	results, err := ream.Evaluate(toks)
	if err != nil {
		r.log.Debug().Err(err).Str("line", text).Msg("evaluation failed")
		fmt.Fprintln(r.errOut, "error:", err)
		return
	}
	for _, res := range results {
		r.log.Debug().Stringer("op", res.Op).Stringer("value", res.Value).Msg("result")
		fmt.Fprintln(r.out, res)
	}
}
