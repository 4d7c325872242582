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

import "io"

// Check scans reader for BGZF framing errors without writing anything. If
// failFast is true, it stops and returns the aggregate as soon as the first
// bad block is found. threads == 0 means "use the machine's logical CPU
// count"; threads == 1 validates every block's payload inline on the
// calling goroutine instead of farming work out to a pool.
func Check(reader io.ReadSeeker, failFast bool, threads int, progress ProgressListener) (Results, error) {
	return process(reader, nil, failFast, threads, progress)
}

// Rescue scans reader and writes every intact block, verbatim, to writer,
// followed by the canonical terminating empty block if the input didn't
// already end with one. Rescue always runs with fail-fast disabled, so that
// one corrupted block doesn't abort the repair of the rest of the file.
func Rescue(reader io.ReadSeeker, writer io.Writer, threads int, progress ProgressListener) (Results, error) {
	return process(reader, writer, false, threads, progress)
}
