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
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Arkanosis/bamrescue/bgzf"
)

func newRescueCommand() *cli.Command {
	return &cli.Command{
		Name:      "rescue",
		Usage:     "rewrite a file with every corrupt block dropped",
		ArgsUsage: "<bamfile> <output>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "threads",
				Usage: "worker count for payload validation (0 = logical CPU count)",
			},
			&cli.BoolFlag{
				Name:               "force",
				Usage:              "overwrite output if it already exists",
				Aliases:            []string{"f"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "quiet",
				Usage:              "suppress progress output",
				DisableDefaultText: true,
			},
		},
		Action: func(c *cli.Context) error {
			inPath := c.Args().Get(0)
			outPath := c.Args().Get(1)
			if inPath == "" || outPath == "" {
				return fmt.Errorf("%w: expected <bamfile> and <output> arguments", ErrFlagParse)
			}

			in, err := openInput(inPath)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBamrescue, err)
			}
			defer in.Close()

			flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
			if !c.Bool("force") {
				flags |= os.O_EXCL
			}
			out, err := os.OpenFile(outPath, flags, 0o644)
			if err != nil {
				return fmt.Errorf("%w: opening output file: %w", ErrBamrescue, err)
			}
			defer out.Close()

			progress := newProgressPrinter(c.App.ErrWriter, c.Bool("quiet"))

			results, err := bgzf.Rescue(in, out, c.Int("threads"), progress)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBamrescue, err)
			}

			_, err = fmt.Fprintf(c.App.Writer, "rescued %d of %d blocks\n",
				results.BlocksCount-results.BadBlocksCount, results.BlocksCount)
			return err
		},
	}
}
