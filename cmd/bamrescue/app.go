// Copyright 2026 The bamrescue Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	// ExitCodeSuccess is the exit code for a clean run.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag or argument parsing
	// error.
	ExitCodeFlagParseError

	// ExitCodeBadBlocks is the exit code check uses when the scan completed
	// but found at least one bad block or a truncation.
	ExitCodeBadBlocks

	// ExitCodeUnknownError is the exit code for anything else.
	ExitCodeUnknownError
)

// ErrFlagParse is an argument parsing error.
var ErrFlagParse = errors.New("parsing flags")

// ErrBamrescue wraps errors raised by the CLI layer itself, as opposed to
// the bgzf package.
var ErrBamrescue = errors.New("bamrescue")

// errBadBlocks is returned by the check command's Action when the scan
// completed cleanly but classified at least one block as bad. It never
// wraps ErrBamrescue: it isn't a failure to run, it's the expected way a
// damaged file gets reported, and the ExitErrHandler maps it to its own
// exit code.
var errBadBlocks = errors.New("bad blocks found")

func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` would
	// otherwise treat the root command's --help as requiring a command name
	// argument, which misfires against `bamrescue --help check`.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

func must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func newApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Check and repair BGZF-framed files.",
		Description: strings.Join([]string{
			"bamrescue scans a BGZF-framed file (as used by BAM) for block-level",
			"framing damage, and can write a repaired copy with every corrupt",
			"block dropped.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},
		},
		Commands: []*cli.Command{
			newCheckCommand(),
			newRescueCommand(),
		},
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				must0(cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return printVersion(c)
			}
			return cli.ShowAppHelp(c)
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}

			switch {
			case errors.Is(err, errBadBlocks):
				_ = must(fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", c.App.Name, err))
				cli.OsExiter(ExitCodeBadBlocks)
			case errors.Is(err, ErrFlagParse):
				_ = must(fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", c.App.Name, err))
				cli.OsExiter(ExitCodeFlagParseError)
			default:
				_ = must(fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", c.App.Name, err))
				cli.OsExiter(ExitCodeUnknownError)
			}
		},
	}
}

// must0 is must for calls that only return an error.
func must0(err error) {
	if err != nil {
		panic(err)
	}
}
