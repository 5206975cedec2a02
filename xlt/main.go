// Copyright 2021, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Command xlt moves tables between CSV files and spreadsheets.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		slog.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func ffOptions() []ff.Option {
	return []ff.Option{
		ff.WithEnvVarPrefix("XLT"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	}
}

// newFlagSet returns a flag set with a -config flag, read by ffOptions.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", "", "config file of flag value pairs")
	return fs
}

func Main() error {
	slog.SetDefault(logger)

	fs := newFlagSet("xlt")
	fs.Var(&verbose, "v", "logging verbosity")

	app := ffcli.Command{Name: "xlt", FlagSet: fs, Options: ffOptions(),
		ShortUsage: "xlt [-v] <read|write|clear|convert> [flags] args...",
		Subcommands: []*ffcli.Command{
			readCmd(), writeCmd(), clearCmd(), convertCmd(),
		},
		Exec: func(ctx context.Context, args []string) error { return flag.ErrHelp },
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	err := app.ParseAndRun(ctx, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}
