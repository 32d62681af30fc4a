// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the settings of the interactive loop. It may be read
// from a YAML file; flags set on the command line take precedence.
type config struct {
	Prompt     string `yaml:"prompt"`
	ShowPrompt bool   `yaml:"show_prompt"`
	Trace      bool   `yaml:"trace"`
	LogLevel   string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		Prompt:     "REPL -> ",
		ShowPrompt: true,
		LogLevel:   "info",
	}
}

// loadConfig reads a YAML configuration file. Keys missing from the
// file keep their default values; unknown keys are an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	fd, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer fd.Close()
	dec := yaml.NewDecoder(fd)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseArgs parses the command line. It returns the configuration and
// the names of the files to load before reading standard input.
func parseArgs(args []string, output io.Writer) (config, []string, error) {
	def := defaultConfig()
	fs := flag.NewFlagSet("ream", flag.ContinueOnError)
	fs.SetOutput(output)
	var (
		configFile = fs.String("config", "", "YAML configuration `file`")
		prompt     = fs.String("prompt", def.Prompt, "interactive prompt")
		doPrompt   = fs.Bool("doprompt", def.ShowPrompt, "show interactive prompt")
		trace      = fs.Bool("trace", def.Trace, "print each token as it is read")
		logLevel   = fs.String("log-level", def.LogLevel, "log level (debug, info, warn, error)")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: ream [flags] [file ...]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return def, nil, err
	}

	cfg := def
	if *configFile != "" {
		var err error
		if cfg, err = loadConfig(*configFile); err != nil {
			return def, nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prompt":
			cfg.Prompt = *prompt
		case "doprompt":
			cfg.ShowPrompt = *doPrompt
		case "trace":
			cfg.Trace = *trace
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	return cfg, fs.Args(), nil
}
