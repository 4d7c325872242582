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
	"fmt"
	"io"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/Arkanosis/bamrescue/bgzf"
)

func newCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "scan a file for BGZF framing errors",
		ArgsUsage: "<bamfile>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "quiet",
				Usage:              "suppress the summary table and progress output",
				DisableDefaultText: true,
			},
			&cli.IntFlag{
				Name:  "threads",
				Usage: "worker count for payload validation (0 = logical CPU count)",
			},
			&cli.BoolFlag{
				Name:               "fail-fast",
				Usage:              "stop at the first bad block instead of scanning the whole file",
				DisableDefaultText: true,
			},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("%w: missing <bamfile> argument", ErrFlagParse)
			}

			f, err := openInput(path)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBamrescue, err)
			}
			defer f.Close()

			quiet := c.Bool("quiet")
			progress := newProgressPrinter(c.App.ErrWriter, quiet)

			results, err := bgzf.Check(f, c.Bool("fail-fast"), c.Int("threads"), progress)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBamrescue, err)
			}

			if !quiet {
				printResults(c.App.Writer, results)
			}

			if results.BadBlocksCount > 0 || results.TruncatedInBlock || results.TruncatedBetweenBlocks {
				return errBadBlocks
			}
			return nil
		},
	}
}

func printResults(w io.Writer, results bgzf.Results) {
	tbl := table.New("metric", "value")
	tbl.WithWriter(w)
	tbl.AddRow("blocks", results.BlocksCount)
	tbl.AddRow("bad blocks", results.BadBlocksCount)
	tbl.AddRow("truncated in block", results.TruncatedInBlock)
	tbl.AddRow("truncated between blocks", results.TruncatedBetweenBlocks)
	tbl.Print()
}
