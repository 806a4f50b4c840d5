// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	genflags "github.com/golang/bitflags/cmd/flagsgen/internal_genflags"
	"github.com/golang/bitflags/flaggen"
	"github.com/golang/bitflags/internal/errors"
	"github.com/golang/bitflags/internal/logflags"
	"github.com/golang/bitflags/internal/set"
)

// Keys shared by the command line, the config file and the environment.
var configKeys = []string{"suffix", "header", "log", "log-output"}

// options holds the settings of a single invocation.
type options struct {
	output string // replaces the generated file name; single input only
	check  bool   // compare instead of writing
	gen    flaggen.Options
}

func newCommand() *cobra.Command {
	var (
		v       = viper.New()
		cfgFile string
		opts    options
	)
	cmd := &cobra.Command{
		Use:   "flagsgen [flags] file.flags [file.yaml ...]",
		Short: "Generate Go bit-flag types from declaration files",
		Long: `flagsgen reads flag declarations and writes, next to each input, a Go file
declaring a named unsigned integer type, one constant per flag and the set
operations on it.

Inputs ending in .flags use Go syntax; inputs ending in .yaml or .yml use YAML.
Settings may also come from a .flagsgen.yaml file in the current directory or
from FLAGSGEN_* environment variables; command-line flags take precedence.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			used, err := loadConfig(v, cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := logflags.Setup(v.GetBool("log"), v.GetString("log-output"), cmd.ErrOrStderr()); err != nil {
				return err
			}
			if used != "" && logflags.CLI() {
				logflags.CLILogger().Debugf("using config file %s", used)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.gen.Suffix = v.GetString("suffix")
			if name := v.GetString("header"); name != "" {
				header, err := readHeader(name)
				if err != nil {
					return err
				}
				opts.gen.Header = header
			}
			return run(cmd.Context(), &opts, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.output, "output", "o", "", "output file (only with a single input)")
	fs.String("suffix", flaggen.DefaultSuffix, "output filename suffix")
	fs.String("header", "", "file whose contents are prepended to every output as a comment")
	fs.BoolVar(&opts.check, "check", false, "do not write; fail if any output is out of date")
	fs.Bool("log", false, "enable debug logging")
	fs.String("log-output", "", "comma-separated list of layers to log: decl,gen,cli")
	fs.StringVar(&cfgFile, "config", "", "config file (default ./.flagsgen.yaml)")
	return cmd
}

// loadConfig binds the command-line flags to v and reads the config file
// and environment. It returns the name of the config file read, if any.
// A missing default config file is not an error.
func loadConfig(v *viper.Viper, cfgFile string, fs *pflag.FlagSet) (string, error) {
	for _, key := range configKeys {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return "", err
		}
	}
	v.SetEnvPrefix("flagsgen")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".flagsgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return "", errors.New("reading config: %v", err)
		}
		return "", nil
	}
	return v.ConfigFileUsed(), nil
}

// readHeader returns the lines of the named file, without trailing blank lines.
func readHeader(name string) ([]string, error) {
	b, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, errors.New("reading header: %w", err)
	}
	b = bytes.TrimRight(b, "\r\n\t ")
	if len(b) == 0 {
		return nil, nil
	}
	lines := strings.Split(string(b), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r\t ")
	}
	return lines, nil
}

// generate runs the flag generator over the named declaration files.
func generate(ctx context.Context, opts *flaggen.Options, paths []string) ([]*flaggen.Output, error) {
	return flaggen.Run(ctx, opts, paths, func(gen *flaggen.Generator) error {
		for _, f := range gen.Files {
			genflags.GenerateFile(gen, f)
		}
		return nil
	})
}

// run generates the named files and writes, or with opts.check verifies,
// every output.
func run(ctx context.Context, opts *options, paths []string) error {
	log := logflags.CLILogger()
	if opts.output != "" && len(paths) != 1 {
		return errors.New("--output requires exactly one input file, got %d", len(paths))
	}
	outs, err := generate(ctx, &opts.gen, paths)
	if err != nil {
		return err
	}
	if opts.output != "" {
		outs[0].Filename = opts.output
	}

	var (
		mu    sync.Mutex
		stale set.Strings
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, out := range outs {
		out := out
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if opts.check {
				current, err := ioutil.ReadFile(out.Filename)
				if err == nil && bytes.Equal(current, out.Content) {
					return nil
				}
				if logflags.CLI() {
					log.Debugf("%s is out of date", out.Filename)
				}
				mu.Lock()
				stale.Set(out.Filename)
				mu.Unlock()
				return nil
			}
			if logflags.CLI() {
				log.Debugf("writing %s", out.Filename)
			}
			if err := ioutil.WriteFile(out.Filename, out.Content, 0666); err != nil {
				return errors.New("%w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if stale.Len() > 0 {
		return errors.OutOfDate(strings.Join(stale.Sorted(), ", "))
	}
	return nil
}
