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

// Results is the aggregate outcome of a Check or Rescue run.
type Results struct {
	// BlocksCount and BlocksSize count every block read in full (header,
	// payload, and trailer), regardless of whether it was later found
	// corrupted; BlocksSize sums their declared ISIZE.
	BlocksCount uint64
	BlocksSize  uint64

	// BadBlocksCount and BadBlocksSize count blocks dropped because their
	// payload failed to inflate, checksum, or size-match, or because they
	// were flagged corrupted at the header level (a 3-of-4 header, or a
	// block tainted by the damaged header right after it) whatever their
	// payload. Outside fail-fast mode, a block skipped by a resync or cut
	// short inside its extra field, payload, or trailer is not counted.
	BadBlocksCount uint64
	BadBlocksSize  uint64

	// TruncatedInBlock is set when the input ends partway through a block
	// (a short header, extra field, payload, or trailer read).
	TruncatedInBlock bool

	// TruncatedBetweenBlocks is set when the input ends cleanly between
	// blocks but without the canonical terminating empty block.
	TruncatedBetweenBlocks bool
}

// ProgressListener receives updates as Check or Rescue scans an input. Any
// method may be left as a no-op; callers that don't need progress reporting
// can pass a nil ProgressListener entirely.
type ProgressListener interface {
	// OnNewTarget is called once, at the start of a scan, with the total
	// input size in bytes.
	OnNewTarget(total uint64)

	// OnProgress is called after each block that is not corrupted, with the
	// byte offset immediately following it.
	OnProgress(position uint64)

	// OnBadBlock is called once per block classified as bad.
	OnBadBlock()

	// OnFinished is called once, after the scan completes normally (not on
	// a fail-fast early return).
	OnFinished()
}
