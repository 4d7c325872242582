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
	"compress/flate"
	"hash/crc32"
	"io"
)

// validatePayload inflates blk's compressed payload and checks it against
// the trailer's declared CRC32 and ISIZE. blk may be nil (the pipeline
// always dispatches one task per header read, including the very first
// iteration when there is no previous block yet); validating a nil block is
// a no-op that reports nothing.
func validatePayload(blk *blockRecord) blockStatus {
	if blk == nil {
		return blockStatus{}
	}

	inflated, err := inflate(blk.deflatedPayloadBytes)
	if err != nil {
		return blockStatus{corrupted: true, inflatedPayloadSize: blk.declaredISIZE}
	}

	if crc32.Checksum(inflated, crc32.MakeTable(crc32ISOHDLC)) != blk.declaredCRC32 {
		return blockStatus{corrupted: true, inflatedPayloadSize: blk.declaredISIZE}
	}

	if uint32(len(inflated)) != blk.declaredISIZE {
		return blockStatus{corrupted: true, inflatedPayloadSize: blk.declaredISIZE}
	}

	if blk.corrupted {
		return blockStatus{corrupted: true, inflatedPayloadSize: blk.declaredISIZE}
	}

	return blockStatus{inflatedPayloadSize: blk.declaredISIZE, block: blk}
}

func inflate(deflated []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(deflated))
	defer fr.Close()
	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, err
	}
	return out, nil
}
