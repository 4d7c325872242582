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
)

// progressPrinter is a bgzf.ProgressListener that prints one line per whole
// percentage point of progress, plain text, no redraw-in-place widget.
type progressPrinter struct {
	w     io.Writer
	quiet bool

	total   uint64
	lastPct int
}

func newProgressPrinter(w io.Writer, quiet bool) *progressPrinter {
	return &progressPrinter{w: w, quiet: quiet, lastPct: -1}
}

func (p *progressPrinter) OnNewTarget(total uint64) {
	p.total = total
}

func (p *progressPrinter) OnProgress(position uint64) {
	if p.quiet || p.total == 0 {
		return
	}

	pct := int(position * 100 / p.total)
	if pct == p.lastPct {
		return
	}
	p.lastPct = pct
	fmt.Fprintf(p.w, "%d%%\n", pct)
}

func (p *progressPrinter) OnBadBlock() {}

func (p *progressPrinter) OnFinished() {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.w, "done")
}
