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
	"fmt"
	"io"
)

// process is the shared engine behind Check and Rescue. output == nil means
// check mode: blocks are validated but never written anywhere.
func process(input io.ReadSeeker, output io.Writer, failFast bool, threads int, progress ProgressListener) (Results, error) {
	f, err := newFrameReader(input)
	if err != nil {
		return Results{}, fmt.Errorf("%w: opening input: %w", Err, err)
	}

	if progress != nil {
		progress.OnNewTarget(uint64(f.length()))
	}

	var results Results
	pl := newPipeline(threads)

	var previousBlock *blockRecord
	previousBlockPosition := int64(0)
	currentBlockPosition := int64(0)
	outputEndsEmpty := false

	// retire reports whether failFast should stop the scan right now: a
	// corrupted payload counts as the one bad block that ends the scan in
	// fail-fast mode.
	retire := func(status blockStatus) (bool, error) {
		switch {
		case status.corrupted:
			results.BadBlocksCount++
			results.BadBlocksSize += uint64(status.inflatedPayloadSize)
			if progress != nil {
				progress.OnBadBlock()
			}
		case output != nil && status.block != nil:
			if err := writeBlock(output, status.block); err != nil {
				return false, fmt.Errorf("%w: writing block: %w", Err, err)
			}
			outputEndsEmpty = status.block.declaredISIZE == 0
		}
		if status.block != nil && progress != nil {
			progress.OnProgress(status.block.endPosition)
		}
		return status.corrupted && failFast, nil
	}

	dispatchPrevious := func() (bool, error) {
		blk := previousBlock
		previousBlock = nil
		if pl.inline() {
			return retire(validatePayload(blk))
		}
		pl.push(pl.dispatch(blk))
		return false, nil
	}

blocks:
	for {
		if !pl.inline() && pl.full() {
			stop, err := retire(pl.popOldest())
			if err != nil {
				return results, err
			}
			if stop {
				return results, nil
			}
		}

		previousBlockPosition = currentBlockPosition
		currentBlockPosition = f.position()

		outcome, perr := parseHeader(f)
		if perr != nil {
			return results, fmt.Errorf("%w: reading header: %w", Err, perr)
		}

		switch outcome.kind {
		case headerEndOfInput:
			break blocks

		case headerTruncated:
			if outcome.taintPrevious && previousBlock != nil {
				previousBlock.corrupted = true
			}
			results.TruncatedInBlock = true
			if failFast {
				results.BadBlocksCount++
				if progress != nil {
					progress.OnBadBlock()
				}
				return results, nil
			}
			break blocks

		case headerNeedsResync:
			if outcome.anchorAtPrevious && previousBlock != nil {
				previousBlock.corrupted = true
			}
			if failFast {
				results.BadBlocksCount++
				if progress != nil {
					progress.OnBadBlock()
				}
				return results, nil
			}
			anchor := currentBlockPosition + 1
			if outcome.anchorAtPrevious {
				anchor = previousBlockPosition + 1
			}
			if err := resyncToNextBlock(f, anchor); err != nil {
				return results, fmt.Errorf("%w: resynchronizing: %w", Err, err)
			}
			continue blocks
		}

		// headerFound: dispatch the previous block now, so its payload
		// validation can run while this block's payload is read off disk.
		stop, err := dispatchPrevious()
		if err != nil {
			return results, err
		}
		if stop {
			return results, nil
		}

		deflated, derr := f.readExact(outcome.deflatedSize)
		if derr != nil {
			results.TruncatedInBlock = true
			if failFast {
				results.BadBlocksCount++
				if progress != nil {
					progress.OnBadBlock()
				}
				return results, nil
			}
			break blocks
		}

		crc, cerr := f.readU32LE()
		if cerr != nil {
			results.TruncatedInBlock = true
			if failFast {
				results.BadBlocksCount++
				if progress != nil {
					progress.OnBadBlock()
				}
				return results, nil
			}
			break blocks
		}

		isize, ierr := f.readU32LE()
		if ierr != nil {
			results.TruncatedInBlock = true
			if failFast {
				results.BadBlocksCount++
				if progress != nil {
					progress.OnBadBlock()
				}
				return results, nil
			}
			break blocks
		}

		previousBlock = &blockRecord{
			headerBytes:          outcome.headerBytes,
			deflatedPayloadBytes: deflated,
			declaredCRC32:        crc,
			declaredISIZE:        isize,
			corrupted:            outcome.corrupted,
			endPosition:          uint64(f.position()),
		}
		results.BlocksCount++
		results.BlocksSize += uint64(isize)
	}

	var lastInflatedSize uint32
	if pl.inline() {
		status := validatePayload(previousBlock)
		previousBlock = nil
		lastInflatedSize = status.inflatedPayloadSize
		if stop, err := retire(status); err != nil {
			return results, err
		} else if stop {
			return results, nil
		}
	} else {
		if pl.full() {
			stop, err := retire(pl.popOldest())
			if err != nil {
				return results, err
			}
			if stop {
				return results, nil
			}
		}
		pl.push(pl.dispatch(previousBlock))
		previousBlock = nil
		for _, status := range pl.drain() {
			lastInflatedSize = status.inflatedPayloadSize
			stop, err := retire(status)
			if err != nil {
				return results, err
			}
			if stop {
				return results, nil
			}
		}
	}

	if lastInflatedSize != 0 {
		results.TruncatedBetweenBlocks = true
	}
	if output != nil && !outputEndsEmpty {
		if err := writeTerminator(output); err != nil {
			return results, fmt.Errorf("%w: writing terminator: %w", Err, err)
		}
	}
	if lastInflatedSize != 0 && failFast {
		return results, nil
	}

	if progress != nil {
		progress.OnFinished()
	}

	return results, nil
}
