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

package bgzf

import (
	"errors"
	"fmt"
)

// Err is the base sentinel all package errors wrap, so callers can test
// errors.Is(err, bgzf.Err) regardless of the specific failure.
var Err = errors.New("bgzf")

var (
	// ErrShortRead indicates a read returned fewer bytes than requested
	// without reaching a block boundary.
	ErrShortRead = fmt.Errorf("%w: short read", Err)

	// ErrNotSeekable indicates an input that cannot be seeked, such as
	// standard input given as "-". Check and Rescue take an io.ReadSeeker
	// because the resync scanner and length discovery both seek.
	ErrNotSeekable = fmt.Errorf("%w: reader is not seekable", Err)
)
