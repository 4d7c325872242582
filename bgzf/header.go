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
	"bytes"
	"encoding/binary"
	"io"
)

type headerOutcomeKind int

const (
	headerFound headerOutcomeKind = iota
	headerEndOfInput
	headerTruncated
	headerNeedsResync
)

// headerOutcome is what parseHeader found at the reader's current position.
type headerOutcome struct {
	kind headerOutcomeKind

	// Populated when kind == headerFound.
	headerBytes  []byte
	deflatedSize int
	corrupted    bool

	// anchorAtPrevious, set only for the kind == headerNeedsResync case that
	// arises from the initial 4-byte gate failing outright (0-2 of 4 bytes
	// correct), means: start the resync scan one byte after the *previous*
	// block's start, and retroactively mark the previous block corrupted.
	// Every other resync trigger (inside extra-field parsing) scans from one
	// byte after this block's own start instead, and leaves the previous
	// block untouched.
	anchorAtPrevious bool

	// taintPrevious, set only for the kind == headerTruncated case that
	// arises from a short read of the fixed 12-byte prefix (as opposed to a
	// short read inside the extra field), retroactively marks the previous
	// block corrupted the same way anchorAtPrevious does.
	taintPrevious bool
}

// parseHeader reads one BGZF block header -- the fixed 12-byte prefix plus
// the variable-length extra field -- starting at f's current position. It
// never seeks on its own: callers invoke the resync scanner and re-enter the
// loop when the kind is headerNeedsResync, and stop the scan when it is
// headerTruncated.
func parseHeader(f *frameReader) (headerOutcome, error) {
	prefix, err := f.readExact(gzipHeaderSize + 2)
	if err != nil {
		if err == io.EOF {
			return headerOutcome{kind: headerEndOfInput}, nil
		}
		return headerOutcome{kind: headerTruncated, taintPrevious: true}, nil
	}

	correctBytes := 0
	if prefix[0] == gzipID1 {
		correctBytes++
	}
	if prefix[1] == gzipID2 {
		correctBytes++
	}
	if prefix[2] == deflateMethod {
		correctBytes++
	}
	if prefix[3] == fextraFlag {
		correctBytes++
	}

	headerCorrupted := false
	if correctBytes < 4 {
		if correctBytes != 3 {
			return headerOutcome{kind: headerNeedsResync, anchorAtPrevious: true}, nil
		}
		// Exactly one of the four canonical bytes is wrong: rescuable in
		// place. Mark the block corrupted (so it is never re-emitted) and
		// keep parsing it.
		headerCorrupted = true
	}

	xlen := binary.LittleEndian.Uint16(prefix[10:12])

	headerBytes := append([]byte{}, prefix...)

	extra, err := f.readExact(int(xlen))
	if err != nil {
		return headerOutcome{kind: headerTruncated}, nil
	}
	headerBytes = append(headerBytes, extra...)

	var bsize uint16
	bsizeSet := false
	remaining := int(xlen)
	er := bytes.NewReader(extra)

	for remaining > 4 {
		var idLen [4]byte
		if _, err := io.ReadFull(er, idLen[:]); err != nil {
			return headerOutcome{kind: headerTruncated}, nil
		}
		subID1, subID2 := idLen[0], idLen[1]
		subLen := binary.LittleEndian.Uint16(idLen[2:4])

		if int(subLen) > remaining-4 {
			return headerOutcome{kind: headerNeedsResync}, nil
		}

		matches := 0
		if subID1 == bgzfSubfieldID1 {
			matches++
		}
		if subID2 == bgzfSubfieldID2 {
			matches++
		}
		if subLen&0xff == 2 {
			matches++
		}
		if subLen&0xff00 == 0 {
			matches++
		}

		if matches == 4 || (matches == 3 && xlen == 6) {
			if matches != 4 {
				headerCorrupted = true
			}
			var raw [2]byte
			if _, err := io.ReadFull(er, raw[:]); err != nil {
				return headerOutcome{kind: headerTruncated}, nil
			}
			bsize = binary.LittleEndian.Uint16(raw[:]) + 1
			bsizeSet = true
		} else if _, err := er.Seek(int64(subLen), io.SeekCurrent); err != nil {
			return headerOutcome{kind: headerTruncated}, nil
		}

		remaining -= 4 + int(subLen)
	}

	if remaining != 0 || !bsizeSet {
		return headerOutcome{kind: headerNeedsResync}, nil
	}

	return headerOutcome{
		kind:         headerFound,
		headerBytes:  headerBytes,
		// BSIZE counts the whole block (10-byte prefix + 2-byte XLEN field +
		// the extra field + the deflated payload + the 8-byte CRC32/ISIZE
		// trailer), minus one.
		deflatedSize: int(bsize) - (gzipHeaderSize + 2 + 8) - int(xlen),
		corrupted:    headerCorrupted,
	}, nil
}
