// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logflags controls which layers of flagsgen write debug logs.
package logflags

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/golang/bitflags/internal/errors"
)

var (
	decl = false
	gen  = false
	cli  = false

	logOut io.Writer
)

func makeLogger(flag bool, fields logrus.Fields) *logrus.Entry {
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	logger.Out = os.Stderr
	if logOut != nil {
		logger.Out = logOut
	}
	logger.Level = logrus.DebugLevel
	if !flag {
		logger.Level = logrus.ErrorLevel
	}
	return logger.WithFields(fields)
}

// Decl returns true if declaration parsing should be logged.
func Decl() bool {
	return decl
}

// DeclLogger returns a logger for the declaration parsers.
func DeclLogger() *logrus.Entry {
	return makeLogger(decl, logrus.Fields{"layer": "decl"})
}

// Gen returns true if code generation should be logged.
func Gen() bool {
	return gen
}

// GenLogger returns a logger for the generator.
func GenLogger() *logrus.Entry {
	return makeLogger(gen, logrus.Fields{"layer": "gen"})
}

// CLI returns true if the command should log file activity.
func CLI() bool {
	return cli
}

// CLILogger returns a logger for the flagsgen command.
func CLILogger() *logrus.Entry {
	return makeLogger(cli, logrus.Fields{"layer": "cli"})
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")

// Setup sets the layer flags based on the contents of logstr.
// Output goes to out, or to os.Stderr when out is nil.
func Setup(logFlag bool, logstr string, out io.Writer) error {
	decl, gen, cli = false, false, false
	logOut = out
	if !logFlag {
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	if logstr == "" {
		logstr = "decl,gen,cli"
	}
	for _, layer := range strings.Split(logstr, ",") {
		switch strings.TrimSpace(layer) {
		case "decl":
			decl = true
		case "gen":
			gen = true
		case "cli":
			cli = true
		case "":
		default:
			return errors.New("unknown log layer %q (want decl, gen or cli)", layer)
		}
	}
	return nil
}
