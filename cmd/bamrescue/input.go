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

	"github.com/Arkanosis/bamrescue/bgzf"
)

// openInput opens path for reading as an io.ReadSeeker. path must name a
// regular, seekable file: bamrescue has no buffering strategy for stdin,
// since both the resync scanner and the length-for-progress computation
// need to seek.
func openInput(path string) (*os.File, error) {
	if path == "-" {
		return nil, bgzf.ErrNotSeekable
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return f, nil
}
