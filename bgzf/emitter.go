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
	"encoding/binary"
	"io"
)

// writeBlock emits blk verbatim: its captured header bytes, its compressed
// payload, and an 8-byte little-endian CRC32/ISIZE trailer.
func writeBlock(w io.Writer, blk *blockRecord) error {
	if _, err := w.Write(blk.headerBytes); err != nil {
		return err
	}
	if _, err := w.Write(blk.deflatedPayloadBytes); err != nil {
		return err
	}
	var trailer [8]byte
	binary.LittleEndian.PutUint32(trailer[0:4], blk.declaredCRC32)
	binary.LittleEndian.PutUint32(trailer[4:8], blk.declaredISIZE)
	_, err := w.Write(trailer[:])
	return err
}

// writeTerminator appends the canonical empty BGZF block.
func writeTerminator(w io.Writer) error {
	_, err := w.Write(Terminator)
	return err
}
